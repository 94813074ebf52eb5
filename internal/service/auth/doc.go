// Package auth manages the session token of the LCMAP REST API.
//
// It logs in with a username and password, keeps the returned token for
// requests made through lcmap.Context, and optionally persists it in the
// system keyring so later runs reuse the session.
package auth
