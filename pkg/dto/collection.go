package dto

import (
	"time"

	"github.com/dimitrije/critterdex-api/internal/models"
)

type CollectionResponse struct {
	Animals []models.CapturedAnimal `json:"animals"`
	Count   int                     `json:"count"`
}

// AnimalSummary is the card header pushed over the event stream. It leaves
// out the image data.
type AnimalSummary struct {
	ID         string            `json:"id"`
	Key        string            `json:"key"`
	Name       string            `json:"name"`
	Type       models.AnimalType `json:"type"`
	Rarity     models.Rarity     `json:"rarity"`
	CapturedAt time.Time         `json:"capturedAt"`
}

type CollectionChangedEvent struct {
	Count   int             `json:"count"`
	Animals []AnimalSummary `json:"animals"`
}

func Summarize(animals []models.CapturedAnimal) []AnimalSummary {
	out := make([]AnimalSummary, len(animals))
	for i, a := range animals {
		out[i] = AnimalSummary{
			ID:         a.ID,
			Key:        a.Key,
			Name:       a.Name,
			Type:       a.Type,
			Rarity:     a.Rarity,
			CapturedAt: a.CapturedAt,
		}
	}
	return out
}
