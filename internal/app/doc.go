// Package app provides the orchestration layer for the Quill application.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the API
// client, and the UI to create the complete edit-form experience. It serves
// as the composition root where all dependencies are initialized and
// connected.
//
// # Initialization Order
//
//  1. Load Quill configuration from ~/.config/quill/config.toml
//  2. Load user preferences (theme) from ~/.config/quill/prefs.toml
//  3. Open the structured log file
//  4. Initialize the HTTP client for the Inkwell API
//  5. Start the TUI and block until the edit is saved or abandoned
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file unreadable or invalid
//   - Client initialization failure (malformed base URL)
//   - The terminal program failing to start
//
// Everything after startup degrades to visible UI state instead: fetch
// failures render a terminal error screen and submit failures render a
// banner, both handled inside the ui package.
package app
