// Package config loads Quill's configuration file.
//
// # Overview
//
// Quill reads a small TOML file describing how to reach the Inkwell API and
// where to write its log. A missing file is not an error: every field has a
// default suitable for a local development server.
//
// # File Location
//
// The default path is ~/.config/quill/config.toml, overridable with the
// -config flag. Tilde expansion is handled here so the rest of the program
// only ever sees absolute paths.
//
// # Fields
//
//	base_url  = "127.0.0.1:8965"                  # Inkwell API base URL
//	api_token = ""                                 # bearer token for /admin routes
//	log_file  = "~/.local/state/quill/quill.log"   # structured log destination
//
// Values are trimmed; blank values fall back to their defaults individually.
// The api_token may stay empty against servers that do not authenticate the
// admin routes.
//
// # Error Handling
//
// Only two things fail loading: an unreadable existing file and invalid TOML.
// Both are returned as wrapped errors and abort startup, since editing
// against a half-configured client would be confusing.
package config
