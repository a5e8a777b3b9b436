package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID reuses a caller supplied X-Request-ID or assigns a new one, and
// echoes it on the response.
func RequestID() drift.HandlerFunc {
	return func(c *drift.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Response.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

func GetRequestID(c *drift.Context) string {
	if id, ok := c.Get(RequestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// RequestLogger logs every request at debug level once the handler chain
// returns.
func RequestLogger(logger *slog.Logger) drift.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	return func(c *drift.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", GetRequestID(c),
			"duration", time.Since(start),
		)
	}
}
