package server

import (
	"fmt"
	"net/http"
	"path"
	"strings"
)

// Router dispatches requests through the compiled route table. Paths are
// matched in cleaned form, but the request reaches the handler unchanged,
// so non-canonical paths such as //foo or /a/../b are routed instead of
// being redirected.
type Router struct {
	mux *http.ServeMux
}

// NewServeMux compiles the route table into a router, in table order.
// Registering the same method and pattern twice is an error.
func NewServeMux(routes []*Route) (*Router, error) {
	mux := http.NewServeMux()

	seen := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		pattern := route.String()

		if _, ok := seen[pattern]; ok {
			return nil, fmt.Errorf("duplicate route: %s", pattern)
		}
		seen[pattern] = struct{}{}

		if err := handle(mux, pattern, route.Handler); err != nil {
			return nil, err
		}
	}

	return &Router{mux: mux}, nil
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodConnect || r.RequestURI == "*" || r.URL == nil {
		rt.mux.ServeHTTP(w, r)
		return
	}

	cleaned := cleanPath(r.URL.Path)
	if cleaned == r.URL.Path {
		rt.mux.ServeHTTP(w, r)
		return
	}

	match := *r
	u := *r.URL
	u.Path = cleaned
	u.RawPath = ""
	match.URL = &u

	h, _ := rt.mux.Handler(&match)
	h.ServeHTTP(w, r)
}

// cleanPath returns the canonical form of p, keeping a trailing slash.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}

	np := path.Clean(p)
	if strings.HasSuffix(p, "/") && np != "/" {
		np += "/"
	}

	return np
}

// handle registers the handler, turning mux panics on invalid or
// conflicting patterns into errors.
func handle(mux *http.ServeMux, pattern string, handler http.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid route %s: %v", pattern, r)
		}
	}()

	mux.Handle(pattern, handler)

	return nil
}
