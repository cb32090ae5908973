package apiclient

import (
	"github.com/google/uuid"
)

// DefaultRequestIDHeader is the header RequestIDInterceptor stamps when no
// Header is configured.
const DefaultRequestIDHeader = "X-Request-Id"

// RequestIDInterceptor is a request interceptor that stamps a UUID on every
// outgoing call, unless the header is already set.
type RequestIDInterceptor struct {
	// Header is the header name to carry the request id. Empty means
	// DefaultRequestIDHeader.
	Header string
}

func (i RequestIDInterceptor) BeforeSend(opts RequestOptions, _ CallOptions) RequestOptions {
	header := i.Header
	if header == "" {
		header = DefaultRequestIDHeader
	}
	if opts.Headers[header] != "" {
		return opts
	}
	out := opts
	out.Headers = mergeHeaders(opts.Headers, map[string]string{header: uuid.NewString()})
	return out
}
