package mockapi

import (
	"net/http"
	"net/http/httptest"
	"time"
)

// Server serves canned responses over an in-process httptest server.
type Server struct {
	router *Router
	delay  time.Duration
	server *httptest.Server
}

// Option is a functional option for Server
type Option func(*Server)

// WithDelay adds a delay to all responses
func WithDelay(delay time.Duration) Option {
	return func(s *Server) {
		s.delay = delay
	}
}

// NewServer creates a started server; callers must Close it.
func NewServer(opts ...Option) *Server {
	s := &Server{
		router: NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.server = httptest.NewServer(s)
	return s
}

// Route registers a canned route and returns the server for chaining.
func (s *Server) Route(route *Route) *Server {
	s.router.Add(route)
	return s
}

// URL is the base address of the running server.
func (s *Server) URL() string {
	return s.server.URL
}

// Close shuts the server down.
func (s *Server) Close() {
	s.server.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	route, _ := s.router.Match(r.Method, r.URL.Path)
	if route == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "no route matched"}`))
		return
	}

	if route.Delay > 0 {
		time.Sleep(route.Delay)
	}

	for k, v := range route.Headers {
		w.Header().Set(k, v)
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", route.ContentType)
	}
	w.WriteHeader(route.StatusCode)
	if route.Body != "" {
		_, _ = w.Write([]byte(route.Body))
	}
}
