package apiclient

// RequestOptions are the transport-level options sent with a call: the HTTP
// method, headers and the fetch-style mode/credentials flags. A zero value is
// usable; verb methods fill Method themselves.
type RequestOptions struct {
	Method      string
	Mode        string
	Credentials string
	Headers     map[string]string
}

// Merge layers override onto o and returns the result without mutating
// either input. Conflict policy: override wins at each leaf — scalar fields
// replace when set, Headers merge key-by-key with override winning per key.
func (o RequestOptions) Merge(override RequestOptions) RequestOptions {
	merged := o
	if override.Method != "" {
		merged.Method = override.Method
	}
	if override.Mode != "" {
		merged.Mode = override.Mode
	}
	if override.Credentials != "" {
		merged.Credentials = override.Credentials
	}
	merged.Headers = mergeHeaders(o.Headers, override.Headers)
	return merged
}

func mergeHeaders(base, override map[string]string) map[string]string {
	if base == nil && override == nil {
		return nil
	}
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// DefaultBaseOptions are the base options a client starts with: cross-origin
// mode and a JSON content type.
func DefaultBaseOptions() RequestOptions {
	return RequestOptions{
		Mode: "cors",
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}
}

// DecodeMode selects how the pipeline decodes a response body.
type DecodeMode string

const (
	// DecodeJSON decodes the body as JSON; an empty or malformed body
	// yields nil data rather than an error. This is the default.
	DecodeJSON DecodeMode = "json"
	// DecodeBlob returns the raw body bytes undecoded.
	DecodeBlob DecodeMode = "blob"
)

// CallOptions direct the pipeline itself for a single call, as opposed to
// RequestOptions which travel with the request.
type CallOptions struct {
	// Mock, when set, short-circuits the call: no dispatch happens and no
	// interceptors fire.
	Mock *Mock

	// Guest tags the call as unauthenticated. Reserved: nothing in the
	// pipeline reads it.
	Guest bool

	// Decode selects the body decoding mode. Empty means DecodeJSON.
	Decode DecodeMode
}
