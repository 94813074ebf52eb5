// Package app wires the configuration, credential and connection managers,
// the LCMAP client and the typed API service together and runs the CLI commands on top of them.
// Command output is rendered as JSON or YAML, optionally filtered through a jq expression.
package app
