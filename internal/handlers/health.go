package handlers

import (
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"
)

type CollectionLoader interface {
	Loaded() bool
}

type HealthHandler struct {
	collection CollectionLoader
}

func NewHealthHandler(collection CollectionLoader) *HealthHandler {
	return &HealthHandler{collection: collection}
}

func (h *HealthHandler) Health(c *drift.Context) {
	if h.collection != nil && !h.collection.Loaded() {
		_ = c.JSON(503, map[string]string{"status": "loading"})
		return
	}
	_ = c.JSON(200, map[string]string{"status": "ok"})
}

// Metrics adapts a net/http handler such as the prometheus exposition handler.
func Metrics(handler http.Handler) drift.HandlerFunc {
	return func(c *drift.Context) {
		handler.ServeHTTP(c.Response, c.Request)
	}
}
