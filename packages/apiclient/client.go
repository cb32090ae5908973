package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AndreaMinato/ApiClient/packages/transport"
)

// Doer dispatches a single request. *transport.Client implements it; tests
// substitute fakes.
type Doer interface {
	Do(ctx context.Context, req *transport.Request) (*transport.Response, error)
}

// Client issues HTTP calls against a base URL, normalizing every response
// into a *Response. The zero configuration uses DefaultBaseOptions and a
// default transport.Client.
//
// The base configuration is shared across calls; replace it via the setters
// before issuing calls concurrently.
type Client struct {
	baseURL string
	base    RequestOptions
	doer    Doer

	request  RequestInterceptor
	response ResponseInterceptor
	onError  ErrorInterceptor
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		base:     DefaultBaseOptions(),
		request:  identityRequestInterceptor{},
		response: noopResponseInterceptor{},
		onError:  noopErrorInterceptor{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.doer == nil {
		c.doer = transport.NewClient()
	}

	return c
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithBaseOptions replaces the default base options wholesale.
func WithBaseOptions(opts RequestOptions) ClientOption {
	return func(c *Client) {
		c.base = opts
	}
}

// WithDoer sets the transport the client dispatches through.
func WithDoer(d Doer) ClientOption {
	return func(c *Client) {
		c.doer = d
	}
}

func WithRequestInterceptor(i RequestInterceptor) ClientOption {
	return func(c *Client) {
		c.SetRequestInterceptor(i)
	}
}

func WithResponseInterceptor(i ResponseInterceptor) ClientOption {
	return func(c *Client) {
		c.SetResponseInterceptor(i)
	}
}

func WithErrorInterceptor(i ErrorInterceptor) ClientOption {
	return func(c *Client) {
		c.SetErrorInterceptor(i)
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// SetRequestInterceptor replaces the request interceptor. Setting a new
// interceptor discards the previous one; nil restores the identity default.
func (c *Client) SetRequestInterceptor(i RequestInterceptor) {
	if i == nil {
		i = identityRequestInterceptor{}
	}
	c.request = i
}

// SetResponseInterceptor replaces the response interceptor; nil restores
// the no-op default.
func (c *Client) SetResponseInterceptor(i ResponseInterceptor) {
	if i == nil {
		i = noopResponseInterceptor{}
	}
	c.response = i
}

// SetErrorInterceptor replaces the error interceptor; nil restores the
// no-op default.
func (c *Client) SetErrorInterceptor(i ErrorInterceptor) {
	if i == nil {
		i = noopErrorInterceptor{}
	}
	c.onError = i
}

// Get issues a GET request. path is appended to the base URL as-is, with no
// separator inserted, so include a leading slash when one is needed.
func (c *Client) Get(ctx context.Context, path string, opts RequestOptions, call CallOptions) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, nil, opts, call)
}

func (c *Client) Delete(ctx context.Context, path string, opts RequestOptions, call CallOptions) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, opts, call)
}

func (c *Client) Head(ctx context.Context, path string, opts RequestOptions, call CallOptions) (*Response, error) {
	return c.do(ctx, http.MethodHead, path, nil, nil, opts, call)
}

func (c *Client) Options(ctx context.Context, path string, opts RequestOptions, call CallOptions) (*Response, error) {
	return c.do(ctx, http.MethodOptions, path, nil, nil, opts, call)
}

// Post issues a POST request. A *transport.Form body passes through as
// multipart form data, nil produces no body, and anything else is
// serialized to JSON.
func (c *Client) Post(ctx context.Context, path string, body any, opts RequestOptions, call CallOptions) (*Response, error) {
	raw, form, err := encodeBody(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, path, raw, form, opts, call)
}

func (c *Client) Put(ctx context.Context, path string, body any, opts RequestOptions, call CallOptions) (*Response, error) {
	raw, form, err := encodeBody(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPut, path, raw, form, opts, call)
}

func (c *Client) Patch(ctx context.Context, path string, body any, opts RequestOptions, call CallOptions) (*Response, error) {
	raw, form, err := encodeBody(body)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPatch, path, raw, form, opts, call)
}

func encodeBody(body any) ([]byte, *transport.Form, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil, nil
	case *transport.Form:
		return nil, b, nil
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request body: %w", err)
		}
		return raw, nil, nil
	}
}

// do is the shared pipeline behind every verb method.
func (c *Client) do(ctx context.Context, method, path string, body []byte, form *transport.Form, opts RequestOptions, call CallOptions) (*Response, error) {
	// Mocked calls never touch the network and fire no interceptors.
	if call.Mock != nil {
		data, err := call.Mock.resolve(ctx)
		if err != nil {
			return nil, err
		}
		return newMockedResponse(data), nil
	}

	merged := c.base.Merge(opts)
	merged.Method = method

	merged = c.request.BeforeSend(merged, call)

	req := buildRequest(c.baseURL+path, body, form, merged)
	raw, err := c.doer.Do(ctx, req)
	if err != nil {
		c.onError.OnError(merged, call, &transport.Response{}, err)
		return nil, err
	}

	if !raw.OK() {
		statusErr := newRequestError(raw)
		c.onError.OnError(merged, call, raw, statusErr)
		return nil, statusErr
	}

	data := decodeBody(raw, call.Decode)

	c.response.AfterReceive(merged, call, raw)
	return newResponse(raw, data), nil
}

// Fetch bypasses the pipeline: no option merge, no interceptors, no status
// classification and no body decoding. It dispatches to baseURL+path with
// exactly the options given and returns the raw transport response.
func (c *Client) Fetch(ctx context.Context, path string, opts RequestOptions) (*transport.Response, error) {
	return c.doer.Do(ctx, buildRequest(c.baseURL+path, nil, nil, opts))
}

func buildRequest(url string, body []byte, form *transport.Form, opts RequestOptions) *transport.Request {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	return &transport.Request{
		Method:      method,
		URL:         url,
		Headers:     opts.Headers,
		Body:        body,
		Form:        form,
		Mode:        opts.Mode,
		Credentials: opts.Credentials,
	}
}

// decodeBody decides what Data holds. 204 responses carry no content and
// always decode to nil. Blob mode hands back the raw bytes. JSON mode is a
// fallible decode that defaults to nil, tolerating empty-body successes.
func decodeBody(raw *transport.Response, mode DecodeMode) any {
	if raw.StatusCode == http.StatusNoContent {
		return nil
	}
	if mode == DecodeBlob {
		return raw.Body
	}
	var v any
	if err := json.Unmarshal(raw.Body, &v); err != nil {
		return nil
	}
	return v
}
