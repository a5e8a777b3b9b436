package dto

import "github.com/dimitrije/critterdex-api/internal/models"

// IdentifyRequest accepts both the current field names and the legacy
// imageData/mockAnimal pair sent by older clients.
type IdentifyRequest struct {
	ImagePayload string `json:"imagePayload,omitempty"`
	OverrideKey  string `json:"overrideKey,omitempty"`
	ImageData    string `json:"imageData,omitempty"`
	MockAnimal   string `json:"mockAnimal,omitempty"`
}

func (r IdentifyRequest) Payload() string {
	if r.ImagePayload != "" {
		return r.ImagePayload
	}
	return r.ImageData
}

func (r IdentifyRequest) Override() string {
	if r.OverrideKey != "" {
		return r.OverrideKey
	}
	return r.MockAnimal
}

type IdentifiedAnimal struct {
	models.AnimalTemplate
	ID string `json:"id"`
}

type IdentifyResponse struct {
	Success bool              `json:"success"`
	Animal  *IdentifiedAnimal `json:"animal,omitempty"`
	Error   string            `json:"error,omitempty"`
}
