package handlers

import (
	"errors"

	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/dimitrije/critterdex-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type CollectionHandler struct {
	collection CollectionServiceInterface
}

func NewCollectionHandler(collection CollectionServiceInterface) *CollectionHandler {
	return &CollectionHandler{collection: collection}
}

func (h *CollectionHandler) List(c *drift.Context) {
	animals := h.collection.Snapshot()
	_ = c.JSON(200, dto.CollectionResponse{Animals: animals, Count: len(animals)})
}

func (h *CollectionHandler) Stats(c *drift.Context) {
	_ = c.JSON(200, h.collection.Stats())
}

func (h *CollectionHandler) Get(c *drift.Context) {
	animal, err := h.collection.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAnimalNotFound) {
			c.NotFound("animal not found")
			return
		}
		c.InternalServerError("failed to get animal")
		return
	}

	_ = c.JSON(200, animal)
}

// Remove is idempotent: removing an unknown id succeeds.
func (h *CollectionHandler) Remove(c *drift.Context) {
	if err := h.collection.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.writeMutationError(c, err, "failed to remove animal")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "animal removed"})
}

func (h *CollectionHandler) Clear(c *drift.Context) {
	if err := h.collection.Clear(c.Request.Context()); err != nil {
		h.writeMutationError(c, err, "failed to clear collection")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "collection cleared"})
}

func (h *CollectionHandler) writeMutationError(c *drift.Context, err error, msg string) {
	switch {
	case errors.Is(err, services.ErrStorage):
		_ = c.JSON(500, dto.ErrorResponse{Code: "STORAGE_FAILURE", Message: msg})
	case errors.Is(err, services.ErrNotLoaded):
		_ = c.JSON(503, dto.ErrorResponse{Code: "NOT_LOADED", Message: "collection is still loading"})
	default:
		c.InternalServerError(msg)
	}
}
