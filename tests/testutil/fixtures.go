package testutil

import (
	"fmt"
	"time"

	"github.com/dimitrije/critterdex-api/internal/catalog"
	"github.com/dimitrije/critterdex-api/internal/models"
)

// TestImage is a tiny valid base64 data URI.
const TestImage = "data:image/png;base64,iVBORw0KGgo="

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	catalog *catalog.Catalog
	counter int
	now     time.Time
}

// NewFixtures creates a fixtures factory backed by the built-in catalog
func NewFixtures() *Fixtures {
	return &Fixtures{
		catalog: catalog.Default(),
		now:     time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Template returns the built-in template for key
func (f *Fixtures) Template(key string) models.AnimalTemplate {
	tmpl, err := f.catalog.Lookup(key)
	if err != nil {
		panic(fmt.Sprintf("unknown fixture species %q", key))
	}
	return tmpl
}

// CapturedAnimal creates a captured animal with a fresh id and a capture time
// one minute after the previous fixture
func (f *Fixtures) CapturedAnimal(key string, opts ...AnimalOption) models.CapturedAnimal {
	f.counter++

	animal := models.CapturedAnimal{
		AnimalTemplate: f.Template(key),
		ID:             fmt.Sprintf("animal-%d", f.counter),
		CapturedAt:     f.now.Add(time.Duration(f.counter) * time.Minute),
		ImageData:      TestImage,
	}

	for _, opt := range opts {
		opt(&animal)
	}
	return animal
}

// AnimalOption configures a test animal
type AnimalOption func(*models.CapturedAnimal)

// WithID sets the animal id
func WithID(id string) AnimalOption {
	return func(a *models.CapturedAnimal) {
		a.ID = id
	}
}

// WithLocation sets the capture location
func WithLocation(location string) AnimalOption {
	return func(a *models.CapturedAnimal) {
		a.Location = location
	}
}
