// Package query filters decoded API responses with jq expressions.
package query
