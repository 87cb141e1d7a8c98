package server

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jonwraymond/devops-info-service/observe"
)

// RequestIDHeader carries the request correlation id in both directions.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 128

// requestID returns the caller's id when it is usable, else a fresh UUID.
func requestID(c *gin.Context) string {
	if id := c.GetHeader(RequestIDHeader); validRequestID(id) {
		return id
	}
	return uuid.NewString()
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// instrument wraps the rest of the chain in a span, records request
// metrics and places a request-scoped logger in the request context.
func instrument(mw *observe.Middleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := requestID(c)
		c.Header(RequestIDHeader, id)

		meta := observe.RequestMeta{
			Method:    c.Request.Method,
			Route:     c.FullPath(),
			Path:      c.Request.URL.Path,
			ClientIP:  c.ClientIP(),
			RequestID: id,
		}

		handle := mw.Wrap(func(ctx context.Context, _ observe.RequestMeta) (int, error) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()

			var err error
			if last := c.Errors.Last(); last != nil {
				err = last.Err
			}
			return c.Writer.Status(), err
		})
		_, _ = handle(c.Request.Context(), meta)
	}
}

// recoverFaults is the error boundary. A handler error or panic is logged
// with its detail and answered with the generic 500 body. When the
// response has already been started it is only logged.
func recoverFaults(fallback observe.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err := fmt.Errorf("panic: %v", rec)
			_ = c.Error(err)
			fail(c, fallback, err, observe.F("stack", string(debug.Stack())))
		}()

		c.Next()

		if last := c.Errors.Last(); last != nil {
			fail(c, fallback, last.Err)
		}
	}
}

func fail(c *gin.Context, fallback observe.Logger, err error, extra ...observe.Field) {
	ctx := c.Request.Context()
	fields := append([]observe.Field{
		observe.F("error", err),
		observe.F("method", c.Request.Method),
		observe.F("path", c.Request.URL.Path),
	}, extra...)
	observe.LoggerFromContext(ctx, fallback).Error(ctx, "unhandled fault", fields...)

	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorResponse)
}
