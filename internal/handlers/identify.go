package handlers

import (
	"log/slog"

	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/dimitrije/critterdex-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// IdentifyHandler is the stateless identify endpoint. It never touches the
// collection; committing goes through the session routes.
type IdentifyHandler struct {
	identifier services.Identifier
	newID      services.IDFunc
	logger     *slog.Logger
}

func NewIdentifyHandler(identifier services.Identifier, newID services.IDFunc, logger *slog.Logger) *IdentifyHandler {
	if newID == nil {
		newID = services.NewID
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentifyHandler{identifier: identifier, newID: newID, logger: logger}
}

func (h *IdentifyHandler) Identify(c *drift.Context) {
	var req dto.IdentifyRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	tmpl, err := h.identifier.Identify(c.Request.Context(), services.IdentifyRequest{
		ImagePayload: req.Payload(),
		OverrideKey:  req.Override(),
	})
	if err != nil {
		h.logger.Info("identify request failed", "error", err)
		_ = c.JSON(200, dto.IdentifyResponse{Success: false, Error: err.Error()})
		return
	}

	_ = c.JSON(200, dto.IdentifyResponse{
		Success: true,
		Animal:  &dto.IdentifiedAnimal{AnimalTemplate: tmpl, ID: h.newID()},
	})
}
