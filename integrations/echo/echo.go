// Package echo provides adapters for using premium-errors with Echo framework.
package echo

import (
	"errors"
	"net/http"

	premiumerrors "github.com/blackwell-systems/premium-errors"
	echofw "github.com/labstack/echo/v4"
)

// Trace adapts the premium-errors trace middleware to Echo's middleware interface.
//
// This generates or propagates trace IDs and makes them available via
// premiumerrors.TraceIDFromRequest(c.Request()).
func Trace(next echofw.HandlerFunc) echofw.HandlerFunc {
	return func(c echofw.Context) error {
		var err error
		handler := premiumerrors.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.SetRequest(r)
			err = next(c)
		}))

		handler.ServeHTTP(c.Response().Writer, c.Request())
		return err
	}
}

// Write sends a structured error response using the premium-errors format.
// It always returns nil so handlers can `return Write(c, err)`.
func Write(c echofw.Context, err error) error {
	premiumerrors.Write(c.Response().Writer, c.Request(), err)
	return nil
}

// ErrorHandler is an echo.HTTPErrorHandler that renders returned errors as
// premium error envelopes. Echo's own *HTTPError values are mapped by status:
// routing and binding failures become DEVELOPER_ERROR.
//
// Example:
//
//	e := echo.New()
//	e.HTTPErrorHandler = ErrorHandler
func ErrorHandler(err error, c echofw.Context) {
	if c.Response().Committed {
		return
	}
	var he *echofw.HTTPError
	if errors.As(err, &he) {
		err = fromHTTPError(he)
	}
	premiumerrors.Write(c.Response().Writer, c.Request(), err)
}

func fromHTTPError(he *echofw.HTTPError) *premiumerrors.Error {
	msg, _ := he.Message.(string)
	switch he.Code {
	case http.StatusNotFound, http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnsupportedMediaType:
		// Unmatched routes and malformed requests.
		return premiumerrors.New(premiumerrors.CodeDeveloperError, he.Code, msg)
	case http.StatusServiceUnavailable:
		return premiumerrors.New(premiumerrors.CodeServiceUnavailable, he.Code, msg)
	default:
		return premiumerrors.Wrap(premiumerrors.CodeError, he.Code, msg, he)
	}
}
