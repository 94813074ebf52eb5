package constants

const (
	// ProductName is the product part of the client agent string.
	ProductName = "LCMAP REST Client"

	// VendorMediaType is the vendor segment of the Accept header.
	VendorMediaType = "vnd.usgs.lcmap"

	// DefaultEndpoint is the API endpoint used when nothing else is configured.
	DefaultEndpoint = "http://localhost:1077"

	// ServerVersion is the API version requested when nothing else is configured.
	ServerVersion = "0.5"

	// DefaultContentType is the content type requested when nothing else is configured.
	// It also serves as the Accept suffix when a content type has no "/".
	DefaultContentType = "json"

	// NoResourceStatus is the HTTP status the API uses for missing resources.
	NoResourceStatus = 404

	// ResourceNotFoundMessage is the error placed into recovered envelopes.
	ResourceNotFoundMessage = "Resource not found"
)
