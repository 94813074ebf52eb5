// Package constants holds values shared by several packages that have no better home.
package constants
