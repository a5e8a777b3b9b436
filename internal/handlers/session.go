package handlers

import (
	"errors"

	"github.com/dimitrije/critterdex-api/internal/services"
	"github.com/dimitrije/critterdex-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type SessionHandler struct {
	session SessionServiceInterface
}

func NewSessionHandler(session SessionServiceInterface) *SessionHandler {
	return &SessionHandler{session: session}
}

func (h *SessionHandler) Get(c *drift.Context) {
	_ = c.JSON(200, h.session.Status())
}

func (h *SessionHandler) Begin(c *drift.Context) {
	status, err := h.session.Begin(nil)
	if err != nil {
		if errors.Is(err, services.ErrSessionConflict) {
			_ = c.JSON(409, dto.ErrorResponse{
				Code:    "SESSION_BUSY",
				Message: "a capture session is already in progress",
			})
			return
		}
		c.InternalServerError("failed to start session")
		return
	}

	_ = c.JSON(201, status)
}

func (h *SessionHandler) SubmitImage(c *drift.Context) {
	var req dto.CaptureImageRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	status, err := h.session.Identify(c.Request.Context(), services.ImagePayload{
		Data:        req.ImageData,
		OverrideKey: req.OverrideKey,
		Location:    req.Location,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyImage):
			c.BadRequest("imageData is required")
		case errors.Is(err, services.ErrNoActiveSession):
			c.NotFound("no active capture session")
		case errors.Is(err, services.ErrInvalidTransition):
			_ = c.JSON(409, dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
		case errors.Is(err, services.ErrSessionCancelled):
			_ = c.JSON(410, dto.ErrorResponse{Code: "SESSION_CANCELLED", Message: "capture session was cancelled"})
		default:
			c.InternalServerError("failed to identify image")
		}
		return
	}

	_ = c.JSON(200, status)
}

func (h *SessionHandler) Complete(c *drift.Context) {
	outcome, err := h.session.Complete(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoActiveSession):
			c.NotFound("no active capture session")
		case errors.Is(err, services.ErrInvalidTransition):
			_ = c.JSON(409, dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
		case errors.Is(err, services.ErrStorage):
			_ = c.JSON(500, dto.ErrorResponse{Code: "STORAGE_FAILURE", Message: "failed to save capture, try again"})
		default:
			c.InternalServerError("failed to complete session")
		}
		return
	}

	if !outcome.Committed {
		resp := dto.CompleteSessionResponse{Outcome: dto.OutcomeDiscarded}
		if outcome.Failure != nil {
			resp.Error = outcome.Failure.Error()
		}
		_ = c.JSON(200, resp)
		return
	}

	_ = c.JSON(200, dto.CompleteSessionResponse{
		Outcome: dto.OutcomeCommitted,
		Animal:  outcome.Animal,
	})
}

func (h *SessionHandler) Cancel(c *drift.Context) {
	if err := h.session.Cancel(); err != nil {
		if errors.Is(err, services.ErrNoActiveSession) {
			c.NotFound("no active capture session")
			return
		}
		c.InternalServerError("failed to cancel session")
		return
	}

	_ = c.JSON(200, h.session.Status())
}
