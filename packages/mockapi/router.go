package mockapi

import (
	"regexp"
	"strings"
	"time"
)

// Route pairs a method and path pattern with the canned response to serve.
// Path patterns may contain ":param" segments matching a single path
// element, e.g. "/users/:id".
type Route struct {
	Method      string
	Path        string
	StatusCode  int
	ContentType string
	Headers     map[string]string
	Body        string
	Delay       time.Duration

	pathRegex *regexp.Regexp
}

// Router matches incoming requests to routes
type Router struct {
	routes []*Route
}

// NewRouter creates a new router
func NewRouter() *Router {
	return &Router{
		routes: make([]*Route, 0),
	}
}

// Add registers a route. Missing fields get defaults: status 200 and an
// application/json content type.
func (r *Router) Add(route *Route) {
	if route.StatusCode == 0 {
		route.StatusCode = 200
	}
	if route.ContentType == "" {
		route.ContentType = "application/json"
	}
	route.pathRegex = compilePattern(normalizePath(route.Path))
	r.routes = append(r.routes, route)
}

// Match finds a route matching the given method and path, returning the
// captured ":param" values alongside it.
func (r *Router) Match(method, path string) (*Route, map[string]string) {
	path = normalizePath(path)

	for _, route := range r.routes {
		if !strings.EqualFold(route.Method, method) {
			continue
		}

		if params := matchPath(route, path); params != nil {
			return route, params
		}
	}

	return nil, nil
}

func normalizePath(path string) string {
	// Ensure path starts with /
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	// Remove trailing slash (except for root)
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}

func matchPath(route *Route, path string) map[string]string {
	if route.pathRegex == nil {
		return nil
	}

	matches := route.pathRegex.FindStringSubmatch(path)
	if matches == nil {
		return nil
	}

	params := make(map[string]string)
	names := route.pathRegex.SubexpNames()
	for i, name := range names {
		if i > 0 && name != "" && i < len(matches) {
			params[name] = matches[i]
		}
	}
	return params
}

var paramSegment = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

func compilePattern(pattern string) *regexp.Regexp {
	// Convert :param segments to named capture groups, quoting everything
	// in between literally.
	var b strings.Builder
	b.WriteString("^")
	last := 0
	for _, loc := range paramSegment.FindAllStringSubmatchIndex(pattern, -1) {
		b.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		b.WriteString("(?P<" + pattern[loc[2]:loc[3]] + ">[^/]+)")
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(pattern[last:]))
	b.WriteString("$")

	regex, err := regexp.Compile(b.String())
	if err != nil {
		// Fallback to literal match
		return regexp.MustCompile("^" + regexp.QuoteMeta(pattern) + "$")
	}
	return regex
}
