package apiclient

import (
	"github.com/AndreaMinato/ApiClient/packages/transport"
)

// RequestInterceptor runs once per dispatched call, after option merging and
// before the network dispatch. Its return value — not its input — is what
// gets sent.
type RequestInterceptor interface {
	BeforeSend(opts RequestOptions, call CallOptions) RequestOptions
}

// RequestInterceptorFunc adapts a function to RequestInterceptor.
type RequestInterceptorFunc func(opts RequestOptions, call CallOptions) RequestOptions

func (f RequestInterceptorFunc) BeforeSend(opts RequestOptions, call CallOptions) RequestOptions {
	return f(opts, call)
}

// ResponseInterceptor observes the raw transport response on the success
// path, after body decoding and before the normalized response is built.
type ResponseInterceptor interface {
	AfterReceive(opts RequestOptions, call CallOptions, raw *transport.Response)
}

// ResponseInterceptorFunc adapts a function to ResponseInterceptor.
type ResponseInterceptorFunc func(opts RequestOptions, call CallOptions, raw *transport.Response)

func (f ResponseInterceptorFunc) AfterReceive(opts RequestOptions, call CallOptions, raw *transport.Response) {
	f(opts, call, raw)
}

// ErrorInterceptor observes every pipeline failure. raw is the response that
// triggered the failure, or an empty response when the dispatch itself never
// returned one. It is an observation point only: the error propagates to the
// caller unchanged afterwards.
type ErrorInterceptor interface {
	OnError(opts RequestOptions, call CallOptions, raw *transport.Response, err error)
}

// ErrorInterceptorFunc adapts a function to ErrorInterceptor.
type ErrorInterceptorFunc func(opts RequestOptions, call CallOptions, raw *transport.Response, err error)

func (f ErrorInterceptorFunc) OnError(opts RequestOptions, call CallOptions, raw *transport.Response, err error) {
	f(opts, call, raw, err)
}

type identityRequestInterceptor struct{}

func (identityRequestInterceptor) BeforeSend(opts RequestOptions, _ CallOptions) RequestOptions {
	return opts
}

type noopResponseInterceptor struct{}

func (noopResponseInterceptor) AfterReceive(RequestOptions, CallOptions, *transport.Response) {}

type noopErrorInterceptor struct{}

func (noopErrorInterceptor) OnError(RequestOptions, CallOptions, *transport.Response, error) {}
