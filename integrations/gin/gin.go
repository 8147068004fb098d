// Package gin provides adapters for using premium-errors with Gin framework.
package gin

import (
	"net/http"

	premiumerrors "github.com/blackwell-systems/premium-errors"
	"github.com/gin-gonic/gin"
)

// Trace wires the premium-errors trace ID middleware into Gin's middleware chain.
//
// This generates or propagates trace IDs and makes them available via
// premiumerrors.TraceIDFromRequest(c.Request).
//
// Example:
//
//	r := gin.Default()
//	r.Use(Trace())
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		handler := premiumerrors.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.Request = r
			c.Next()
		}))

		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// Write sends a structured error response and aborts the chain.
//
// Example:
//
//	r.POST("/purchases/:token/acknowledge", func(c *gin.Context) {
//	    if err := ack(c.Param("token")); err != nil {
//	        Write(c, premiumerrors.AcknowledgeError(c.Param("token"), err))
//	        return
//	    }
//	})
func Write(c *gin.Context, err error) {
	premiumerrors.Write(c.Writer, c.Request, err)
	c.Abort()
}

// Errors renders the last error collected with c.Error once the handler
// chain has finished, if no response was written yet.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		premiumerrors.Write(c.Writer, c.Request, c.Errors.Last().Err)
	}
}
