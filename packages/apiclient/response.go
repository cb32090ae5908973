package apiclient

import (
	"net/http"
	"strings"
	"time"

	"github.com/AndreaMinato/ApiClient/packages/transport"
	"github.com/tidwall/gjson"
)

// Response is the normalized result of a pipeline call: the transport
// metadata plus Data, the decoded body. Data is nil for 204 responses and
// for bodies that fail JSON decoding under the default decode mode.
type Response struct {
	StatusCode int
	Status     string
	OK         bool
	Headers    map[string]string
	Body       []byte
	Duration   time.Duration
	Data       any
}

func newResponse(raw *transport.Response, data any) *Response {
	return &Response{
		StatusCode: raw.StatusCode,
		Status:     raw.StatusText(),
		OK:         raw.OK(),
		Headers:    raw.Headers,
		Body:       raw.Body,
		Duration:   raw.Duration,
		Data:       data,
	}
}

func newMockedResponse(data any) *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		OK:         true,
		Data:       data,
	}
}

// Get extracts a value from the raw body by gjson path, e.g. "user.name" or
// "items.0.id". It works regardless of what Data holds.
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

func (r *Response) Header(key string) string {
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
