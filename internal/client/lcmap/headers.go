package lcmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oshokin/lcmap-client/internal/constants"
)

const (
	// HeaderUserAgent is the client agent header.
	HeaderUserAgent = "user-agent"
	// HeaderAccept is the vendor media type header.
	HeaderAccept = "accept"
	// HeaderAuthToken is the authentication token header.
	HeaderAuthToken = "x-authtoken"
)

// Headers maps header names to values.
type Headers map[string]string

// Values converts h into Values so it can take part in a deep merge.
// Header names are lower-cased, so "Accept" overrides the base "accept".
func (h Headers) Values() Values {
	if h == nil {
		return nil
	}

	values := make(Values, len(h))
	for name, value := range h {
		values[name] = value
	}

	return lowerHeaderNames(values)
}

// lowerHeaderNames returns headers with lower-cased names.
// Names differing only in case resolve in sorted order, the lower-case spelling last.
func lowerHeaderNames(headers Values) Values {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}

	sort.Strings(names)

	lowered := make(Values, len(headers))
	for _, name := range names {
		lowered[strings.ToLower(name)] = headers[name]
	}

	return lowered
}


// FormatAccept builds "<media-type>/<vendor>.v<version>+<suffix>".
// contentType is split once on its first "/"; without one the suffix is the default content type.
func FormatAccept(vendor, version, contentType string) string {
	mediaType, suffix, found := strings.Cut(contentType, "/")
	if !found || suffix == "" {
		suffix = constants.DefaultContentType
	}

	return fmt.Sprintf("%s/%s.v%s+%s", mediaType, vendor, version, suffix)
}

// BaseHeaders returns the user agent, Accept and X-AuthToken headers of a request.
// Empty version and contentType fall back to the configuration, then to the built-in defaults.
func (c *ClientImpl) BaseHeaders(version, contentType, token string) Headers {
	version = firstNonEmpty(version, c.cfgVersion(), constants.ServerVersion)
	contentType = firstNonEmpty(contentType, c.cfgContentType(), constants.DefaultContentType)

	return Headers{
		HeaderUserAgent: c.userAgentProvider.GetUserAgent(),
		HeaderAccept:    FormatAccept(constants.VendorMediaType, version, contentType),
		HeaderAuthToken: token,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
