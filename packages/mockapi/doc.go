// Package mockapi provides an in-process stub API server serving canned
// responses, for exercising API clients without a real backend.
//
// Routes are registered programmatically with method and path patterns
// (":param" segments match a single path element) and served over an
// httptest server.
package mockapi
