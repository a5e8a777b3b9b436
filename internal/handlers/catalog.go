package handlers

import (
	"errors"

	"github.com/dimitrije/critterdex-api/internal/catalog"
	"github.com/dimitrije/critterdex-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type CatalogHandler struct {
	catalog CatalogInterface
}

func NewCatalogHandler(cat CatalogInterface) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) List(c *drift.Context) {
	species := h.catalog.ListAll()
	_ = c.JSON(200, dto.CatalogResponse{Species: species, Count: len(species)})
}

func (h *CatalogHandler) Get(c *drift.Context) {
	tmpl, err := h.catalog.Lookup(c.Param("key"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.NotFound("species not found")
			return
		}
		c.InternalServerError("failed to get species")
		return
	}

	_ = c.JSON(200, tmpl)
}
