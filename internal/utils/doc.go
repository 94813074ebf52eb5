// Package utils provides small helpers shared across the client:
// user agent providers, content type detection and parsing of "key=value" arguments.
package utils
