// Package chi provides thin adapters for using premium-errors with chi router.
//
// Chi uses standard net/http handlers, so premium-errors works directly.
// This package exists for discoverability and convenience.
package chi

import (
	"fmt"
	"net/http"

	premiumerrors "github.com/blackwell-systems/premium-errors"
)

// Trace is a convenience wrapper around premiumerrors.TraceMiddleware
// that returns a standard net/http middleware for chi.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(chi.Trace)
func Trace(next http.Handler) http.Handler {
	return premiumerrors.TraceMiddleware(next)
}

// Write sends a premium error envelope. It is premiumerrors.Write under
// the chi package name.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	premiumerrors.Write(w, r, err)
}

// NotFound is a handler for r.NotFound. Unmatched routes are reported as
// DEVELOPER_ERROR with status 404; product lookups that miss should return
// premiumerrors.ProductNotExist from their own handler.
//
// Example:
//
//	r.NotFound(chi.NotFound)
func NotFound(w http.ResponseWriter, r *http.Request) {
	e := premiumerrors.New(premiumerrors.CodeDeveloperError, http.StatusNotFound,
		fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path))
	premiumerrors.Write(w, r, e)
}
