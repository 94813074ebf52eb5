package lcmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/lcmap-client/internal/client/lcmap"
	mock_lcmap "github.com/oshokin/lcmap-client/internal/client/lcmap/mocks"
	"github.com/oshokin/lcmap-client/internal/config"
	"github.com/oshokin/lcmap-client/internal/constants"
	"github.com/oshokin/lcmap-client/internal/utils"
	"github.com/oshokin/lcmap-client/internal/version"
)

// TestFormatAccept tests construction of the vendor media type.
func TestFormatAccept(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		version     string
		contentType string
		expected    string
	}{
		{
			name:        "media type with suffix",
			version:     "1.0",
			contentType: "application/json",
			expected:    "application/vnd.usgs.lcmap.v1.0+json",
		},
		{
			name:        "no slash uses default suffix",
			version:     "0.5",
			contentType: "json",
			expected:    "json/vnd.usgs.lcmap.v0.5+json",
		},
		{
			name:        "splits on first slash only",
			version:     "2.0",
			contentType: "application/geo/json",
			expected:    "application/vnd.usgs.lcmap.v2.0+geo/json",
		},
		{
			name:        "empty suffix uses default",
			version:     "1.0",
			contentType: "text/",
			expected:    "text/vnd.usgs.lcmap.v1.0+json",
		},
		{
			name:        "xml",
			version:     "1.0",
			contentType: "application/xml",
			expected:    "application/vnd.usgs.lcmap.v1.0+xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, lcmap.FormatAccept(constants.VendorMediaType, tt.version, tt.contentType))
		})
	}
}

// TestBaseHeaders tests header resolution from arguments, configuration and defaults.
func TestBaseHeaders(t *testing.T) {
	t.Parallel()

	userAgent := utils.FormatClientAgent(constants.ProductName, version.Short())

	configured := config.Default()
	configured.Version = "2.1"
	configured.ContentType = "application/xml"

	tests := []struct {
		name        string
		cfg         *config.Config
		version     string
		contentType string
		token       string
		expected    lcmap.Headers
	}{
		{
			name:        "explicit arguments",
			cfg:         config.Default(),
			version:     "1.0",
			contentType: "application/json",
			token:       "tok123",
			expected: lcmap.Headers{
				"accept":      "application/vnd.usgs.lcmap.v1.0+json",
				"x-authtoken": "tok123",
				"user-agent":  userAgent,
			},
		},
		{
			name: "process defaults",
			cfg:  config.Default(),
			expected: lcmap.Headers{
				"accept":      "json/vnd.usgs.lcmap.v0.5+json",
				"x-authtoken": "",
				"user-agent":  userAgent,
			},
		},
		{
			name: "configuration fallback",
			cfg:  configured,
			expected: lcmap.Headers{
				"accept":      "application/vnd.usgs.lcmap.v2.1+xml",
				"x-authtoken": "",
				"user-agent":  userAgent,
			},
		},
		{
			name:    "built-in fallback without configuration",
			cfg:     nil,
			version: "3.0",
			expected: lcmap.Headers{
				"accept":      "json/vnd.usgs.lcmap.v3.0+json",
				"x-authtoken": "",
				"user-agent":  userAgent,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			client := lcmap.NewClient(tt.cfg, mock_lcmap.NewMockTransport(ctrl))

			assert.Equal(t, tt.expected, client.BaseHeaders(tt.version, tt.contentType, tt.token))
		})
	}
}
