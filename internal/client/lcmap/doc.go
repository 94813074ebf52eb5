// Package lcmap provides a Go client facade for the LCMAP REST API.
// It merges library defaults, caller overrides and transport settings into a single request,
// builds the vendor-specific Accept header, dispatches the request through a pluggable Transport
// and normalizes the JSON response into the body, result or errors part the caller asked for.
// A "resource not found" failure is recovered into an Envelope instead of an error.
package lcmap
