package utils

import (
	"errors"
	"fmt"
	"math"
	"mime"
	"regexp"
	"strings"
)

var (
	// textContentTypePatterns is a slice of regular expressions that match content types
	// considered to be text-based. This includes "text/*", "application/json",
	// vendor JSON types such as "application/vnd.usgs.lcmap.v0.5+json" and "application/samlmetadata+xml".
	//nolint:gochecknoglobals // These are immutable, pre-compiled regex patterns and used as constants.
	textContentTypePatterns = []*regexp.Regexp{
		regexp.MustCompile("^text/.+"),
		regexp.MustCompile("^application/json$"),
		regexp.MustCompile(`^application/[^/]+\+json$`),
		regexp.MustCompile(`^application/samlmetadata\+xml`),
	}

	// ErrInvalidKeyValuePair indicates that a "key=value" string has no separator or an empty key.
	ErrInvalidKeyValuePair = errors.New("invalid key=value pair")
)

// SafeUint64ToInt64 converts an uint64 value to an int64 safely,
// ensuring that the value does not exceed the maximum limit of int64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// SafeInt64ToUint64 converts an int64 value to an uint64, clamping negative values to zero.
func SafeInt64ToUint64(val int64) uint64 {
	if val < 0 {
		return 0
	}

	return uint64(val)
}

// IsTextContentType checks if the given content type represents a text-based format.
// It supports common text content types like "text/*", "application/json", "+json" vendor types
// and "application/samlmetadata+xml".
// It also checks that the charset, if present, is either "utf-8" or "us-ascii".
func IsTextContentType(contentType string) bool {
	parsedType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	for _, pattern := range textContentTypePatterns {
		if !pattern.MatchString(parsedType) {
			continue
		}

		charset := strings.ToLower(params["charset"])

		return charset == "" || charset == "utf-8" || charset == "us-ascii"
	}

	return false
}

// ParseKeyValuePairs converts "key=value" strings into a map.
// The value may contain further "=" characters; later duplicates win.
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")

		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidKeyValuePair, pair)
		}

		result[key] = value
	}

	return result, nil
}

// Map applies a transformation function to each element of a slice and returns a new slice with the results.
func Map[E, S any](v []E, transformFunc func(E) S) []S {
	result := make([]S, len(v))
	for i := range v {
		result[i] = transformFunc(v[i])
	}

	return result
}
