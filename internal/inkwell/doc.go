// Package inkwell provides an HTTP client for the Inkwell blog API.
//
// # Overview
//
// This package defines the API client Quill uses to load a post and the
// category catalog and to submit an edited post. It handles HTTP
// communication, JSON serialization, and type-safe representation of the
// wire payloads.
//
// # Endpoints
//
// The client supports the three endpoints the edit form needs:
//
//   - GET /posts/{id}: a single post with its category associations
//   - GET /categories: the global category catalog
//   - PUT /admin/posts/{id}: submit an edited post (bearer token when set)
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and User-Agent: quill/0.1 headers
//   - Have a 10-second timeout via the shared http.Client
//   - Return wrapped errors with context about what failed
//
// Non-2xx responses become *APIError carrying the status code and path, so
// callers can distinguish "the server said no" from transport failures.
//
// # URL Construction
//
// The base URL accepts several formats:
//
//   - "127.0.0.1:8965"            → http://127.0.0.1:8965
//   - "https://blog.example.com"  → https://blog.example.com
//
// The scheme defaults to "http://" when absent; path, query, and fragment
// are stripped.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling and concurrent requests internally, which
// matters here because the post and catalog fetches run in parallel.
package inkwell
