// Package transport performs the actual HTTP dispatch for the API client.
//
// It wraps the standard library's http package with additional features:
//   - Configurable timeouts
//   - Redirect handling
//   - SSL validation and proxy configuration
//   - Response materialization (status, headers, fully-read body)
//   - Multipart form data support
package transport
