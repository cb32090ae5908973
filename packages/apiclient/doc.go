// Package apiclient is a thin wrapper around an HTTP transport that gives
// callers one consistent entry point per HTTP verb.
//
// Each call merges per-call options onto the client's base options, runs the
// request interceptor, dispatches, classifies the status, decodes the body,
// runs the response interceptor and returns a normalized Response pairing the
// transport metadata with the decoded body. Per-call control options can
// short-circuit the whole pipeline with a canned (mocked) payload or switch
// body decoding between JSON and raw bytes.
package apiclient
