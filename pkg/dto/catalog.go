package dto

import "github.com/dimitrije/critterdex-api/internal/models"

type CatalogResponse struct {
	Species []models.AnimalTemplate `json:"species"`
	Count   int                     `json:"count"`
}
