package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dimitrije/critterdex-api/internal/models"
)

var ErrNotFound = errors.New("species not found")

// Catalog is a read-only species table. Iteration order is the order the
// templates were supplied in.
type Catalog struct {
	byIndex []models.AnimalTemplate
	byKey   map[string]int
}

func New(templates []models.AnimalTemplate) (*Catalog, error) {
	c := &Catalog{
		byIndex: make([]models.AnimalTemplate, 0, len(templates)),
		byKey:   make(map[string]int, len(templates)),
	}
	for i, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("template at index %d: %w", i, err)
		}
		if _, dup := c.byKey[t.Key]; dup {
			return nil, fmt.Errorf("duplicate key %q", t.Key)
		}
		c.byKey[t.Key] = len(c.byIndex)
		c.byIndex = append(c.byIndex, t.Clone())
	}
	return c, nil
}

// LoadFromJSON reads a catalog override file containing a JSON array of
// templates.
func LoadFromJSON(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var arr []models.AnimalTemplate
	if err := json.Unmarshal(raw, &arr); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(arr) == 0 {
		return nil, fmt.Errorf("species list is empty")
	}
	return New(arr)
}

func (c *Catalog) Lookup(key string) (models.AnimalTemplate, error) {
	idx, ok := c.byKey[key]
	if !ok {
		return models.AnimalTemplate{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return c.byIndex[idx].Clone(), nil
}

func (c *Catalog) ListAll() []models.AnimalTemplate {
	out := make([]models.AnimalTemplate, len(c.byIndex))
	for i, t := range c.byIndex {
		out[i] = t.Clone()
	}
	return out
}

func (c *Catalog) Keys() []string {
	out := make([]string, len(c.byIndex))
	for i, t := range c.byIndex {
		out[i] = t.Key
	}
	return out
}

func (c *Catalog) Len() int { return len(c.byIndex) }

// MatchKeyword resolves a free-text keyword: exact key, then exact name, then
// the first key or name containing the keyword. Matching ignores case.
func (c *Catalog) MatchKeyword(keyword string) (models.AnimalTemplate, bool) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return models.AnimalTemplate{}, false
	}

	for _, t := range c.byIndex {
		if strings.ToLower(t.Key) == kw {
			return t.Clone(), true
		}
	}
	for _, t := range c.byIndex {
		if strings.ToLower(t.Name) == kw {
			return t.Clone(), true
		}
	}
	for _, t := range c.byIndex {
		if strings.Contains(strings.ToLower(t.Key), kw) || strings.Contains(strings.ToLower(t.Name), kw) {
			return t.Clone(), true
		}
	}
	return models.AnimalTemplate{}, false
}
