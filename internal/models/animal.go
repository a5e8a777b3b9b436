package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type AnimalType string

const (
	TypeMammal    AnimalType = "mammal"
	TypeBird      AnimalType = "bird"
	TypeReptile   AnimalType = "reptile"
	TypeAmphibian AnimalType = "amphibian"
	TypeFish      AnimalType = "fish"
	TypeInsect    AnimalType = "insect"
	TypeArachnid  AnimalType = "arachnid"
	TypeMarine    AnimalType = "marine"
)

var AnimalTypes = []AnimalType{
	TypeMammal, TypeBird, TypeReptile, TypeAmphibian,
	TypeFish, TypeInsect, TypeArachnid, TypeMarine,
}

func (t AnimalType) Valid() bool {
	for _, known := range AnimalTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Rarity is a display tier only; it never changes gameplay.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary}

// Tier returns the ordinal of the rarity, 0 for common up to 3 for
// legendary, or -1 for an unknown value.
func (r Rarity) Tier() int {
	for i, known := range Rarities {
		if r == known {
			return i
		}
	}
	return -1
}

func (r Rarity) Valid() bool { return r.Tier() >= 0 }

const (
	StatMin = 0
	StatMax = 100
)

type Stats struct {
	Speed        int `json:"speed"`
	Strength     int `json:"strength"`
	Intelligence int `json:"intelligence"`
	Cuteness     int `json:"cuteness"`
	Stealth      int `json:"stealth"`
}

func (s Stats) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"speed", s.Speed},
		{"strength", s.Strength},
		{"intelligence", s.Intelligence},
		{"cuteness", s.Cuteness},
		{"stealth", s.Stealth},
	}
	for _, f := range fields {
		if f.value < StatMin || f.value > StatMax {
			return fmt.Errorf("stat %s out of range [%d,%d]: %d", f.name, StatMin, StatMax, f.value)
		}
	}
	return nil
}

// AnimalTemplate is an immutable species definition owned by the catalog.
type AnimalTemplate struct {
	Key            string     `json:"key"`
	Name           string     `json:"name"`
	ScientificName string     `json:"scientificName"`
	Type           AnimalType `json:"type"`
	Habitat        string     `json:"habitat"`
	Diet           string     `json:"diet"`
	Lifespan       string     `json:"lifespan"`
	Size           string     `json:"size"`
	FunFacts       []string   `json:"funFacts"`
	Rarity         Rarity     `json:"rarity"`
	Stats          Stats      `json:"stats"`
}

func (a AnimalTemplate) Validate() error {
	if strings.TrimSpace(a.Key) == "" {
		return errors.New("missing key")
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("missing name for %q", a.Key)
	}
	if !a.Type.Valid() {
		return fmt.Errorf("unknown type %q for %q", a.Type, a.Key)
	}
	if !a.Rarity.Valid() {
		return fmt.Errorf("unknown rarity %q for %q", a.Rarity, a.Key)
	}
	if err := a.Stats.Validate(); err != nil {
		return fmt.Errorf("%s: %w", a.Key, err)
	}
	return nil
}

// Clone returns a copy that shares no mutable state with a.
func (a AnimalTemplate) Clone() AnimalTemplate {
	out := a
	if a.FunFacts != nil {
		out.FunFacts = make([]string, len(a.FunFacts))
		copy(out.FunFacts, a.FunFacts)
	}
	return out
}

// CapturedAnimal is a collection entry stamped out of a template at commit
// time.
type CapturedAnimal struct {
	AnimalTemplate
	ID         string    `json:"id"`
	CapturedAt time.Time `json:"capturedAt"`
	ImageData  string    `json:"imageData"`
	Location   string    `json:"location,omitempty"`
}

func (c CapturedAnimal) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("missing id")
	}
	if c.CapturedAt.IsZero() {
		return fmt.Errorf("missing capture time for %s", c.ID)
	}
	if c.ImageData == "" {
		return fmt.Errorf("missing image data for %s", c.ID)
	}
	return c.AnimalTemplate.Validate()
}

func (c CapturedAnimal) Clone() CapturedAnimal {
	out := c
	out.AnimalTemplate = c.AnimalTemplate.Clone()
	return out
}

func CloneAll(in []CapturedAnimal) []CapturedAnimal {
	out := make([]CapturedAnimal, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}
