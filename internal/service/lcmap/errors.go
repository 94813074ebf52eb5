package lcmap

import "errors"

var (
	// ErrEmptyBand indicates that a tile query has no band.
	ErrEmptyBand = errors.New("band cannot be empty")
	// ErrResourceNotFound indicates that the API reported the resource as missing.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrAPIErrors indicates that the API answered with error messages.
	ErrAPIErrors = errors.New("api returned errors")
	// ErrUnexpectedResponseFormat indicates a response that does not match the expected shape.
	ErrUnexpectedResponseFormat = errors.New("unexpected response format")
	// ErrNoJobLink indicates that a model run response has no result link.
	ErrNoJobLink = errors.New("model run response has no job link")
)
