package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dimitrije/critterdex-api/internal/catalog"
	"github.com/dimitrije/critterdex-api/internal/models"
)

type IdentifyRequest struct {
	ImagePayload string
	OverrideKey  string
}

// Identifier classifies an image into a catalog template. Failures wrap
// ErrIdentificationFailed. Implementations must not touch the collection.
type Identifier interface {
	Identify(ctx context.Context, req IdentifyRequest) (models.AnimalTemplate, error)
}

// IdentificationService is the local stand-in for vision inference: it
// honours an override key and otherwise lets the picker choose.
type IdentificationService struct {
	catalog *catalog.Catalog
	picker  Picker
	logger  *slog.Logger
}

func NewIdentificationService(cat *catalog.Catalog, picker Picker, logger *slog.Logger) *IdentificationService {
	if picker == nil {
		picker = NewUniformPicker(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &IdentificationService{
		catalog: cat,
		picker:  picker,
		logger:  logger.With("component", "identify"),
	}
}

func (s *IdentificationService) Identify(ctx context.Context, req IdentifyRequest) (models.AnimalTemplate, error) {
	if err := ctx.Err(); err != nil {
		return models.AnimalTemplate{}, fmt.Errorf("%w: %w", ErrIdentificationFailed, err)
	}
	if s.catalog == nil || s.catalog.Len() == 0 {
		return models.AnimalTemplate{}, fmt.Errorf("%w: catalog is empty", ErrIdentificationFailed)
	}
	if req.ImagePayload == "" && req.OverrideKey == "" {
		return models.AnimalTemplate{}, fmt.Errorf("%w: no image payload or override key", ErrIdentificationFailed)
	}
	if req.ImagePayload != "" {
		if err := ValidateImagePayload(req.ImagePayload); err != nil {
			return models.AnimalTemplate{}, fmt.Errorf("%w: %w", ErrIdentificationFailed, err)
		}
	}

	if req.OverrideKey != "" {
		if tmpl, err := s.catalog.Lookup(req.OverrideKey); err == nil {
			return tmpl, nil
		}
		if tmpl, ok := s.catalog.MatchKeyword(req.OverrideKey); ok {
			return tmpl, nil
		}
		s.logger.Debug("override key did not resolve, picking instead", "override", req.OverrideKey)
	}

	all := s.catalog.ListAll()
	idx := s.picker.Pick(all)
	if idx < 0 || idx >= len(all) {
		return models.AnimalTemplate{}, fmt.Errorf("%w: picker returned index %d of %d", ErrIdentificationFailed, idx, len(all))
	}
	return all[idx], nil
}
