package services

import (
	mrand "math/rand"
	"testing"

	"github.com/dimitrije/critterdex-api/internal/catalog"
	"github.com/dimitrije/critterdex-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUniformPicker_StaysInRange(t *testing.T) {
	p := NewUniformPicker(mrand.New(mrand.NewSource(1)))
	templates := catalog.Default().ListAll()

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		idx := p.Pick(templates)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(templates))
		seen[idx] = true
	}
	assert.Len(t, seen, len(templates))
}

func TestWeightedPicker_FavoursCommon(t *testing.T) {
	p := NewWeightedPicker(mrand.New(mrand.NewSource(7)))
	templates := catalog.Default().ListAll()

	counts := make(map[models.Rarity]int)
	const draws = 20000
	for i := 0; i < draws; i++ {
		idx := p.Pick(templates)
		counts[templates[idx].Rarity]++
	}

	assert.Greater(t, counts[models.RarityCommon], counts[models.RarityUncommon])
	assert.Greater(t, counts[models.RarityUncommon], counts[models.RarityRare])
	assert.Greater(t, counts[models.RarityRare], counts[models.RarityLegendary])
	assert.Positive(t, counts[models.RarityLegendary])
}

func TestWeightedPicker_SingleTemplate(t *testing.T) {
	p := NewWeightedPicker(nil)
	one := catalog.Default().ListAll()[:1]
	for i := 0; i < 10; i++ {
		assert.Equal(t, 0, p.Pick(one))
	}
}

func TestWeightedPicker_UnknownRarityStillDrawable(t *testing.T) {
	p := NewWeightedPicker(mrand.New(mrand.NewSource(3)))
	templates := []models.AnimalTemplate{{Key: "a", Rarity: "mythic"}, {Key: "b", Rarity: "mythic"}}

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		seen[p.Pick(templates)] = true
	}
	assert.Len(t, seen, 2)
}
