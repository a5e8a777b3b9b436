package dto

import "github.com/dimitrije/critterdex-api/internal/models"

const (
	OutcomeCommitted = "committed"
	OutcomeDiscarded = "discarded"
)

type CaptureImageRequest struct {
	ImageData   string `json:"imageData"`
	OverrideKey string `json:"overrideKey,omitempty"`
	Location    string `json:"location,omitempty"`
}

type CompleteSessionResponse struct {
	Outcome string                 `json:"outcome"`
	Animal  *models.CapturedAnimal `json:"animal,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
