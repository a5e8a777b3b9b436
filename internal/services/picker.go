package services

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"
	"time"

	"github.com/dimitrije/critterdex-api/internal/models"
)

// Picker chooses the index of a template when no override resolves. It is
// only called with a non-empty slice.
type Picker interface {
	Pick(templates []models.AnimalTemplate) int
}

type PickerFunc func(templates []models.AnimalTemplate) int

func (f PickerFunc) Pick(templates []models.AnimalTemplate) int { return f(templates) }

func newSeededRand() *mrand.Rand {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return mrand.New(mrand.NewSource(time.Now().UnixNano()))
	}
	return mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

// UniformPicker draws every template with equal probability.
type UniformPicker struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

func NewUniformPicker(rng *mrand.Rand) *UniformPicker {
	if rng == nil {
		rng = newSeededRand()
	}
	return &UniformPicker{rng: rng}
}

func (p *UniformPicker) Pick(templates []models.AnimalTemplate) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Intn(len(templates))
}

// RarityWeights are the relative draw weights used by WeightedPicker.
var RarityWeights = map[models.Rarity]int{
	models.RarityCommon:    60,
	models.RarityUncommon:  25,
	models.RarityRare:      12,
	models.RarityLegendary: 3,
}

// WeightedPicker draws templates in proportion to the weight of their rarity.
type WeightedPicker struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

func NewWeightedPicker(rng *mrand.Rand) *WeightedPicker {
	if rng == nil {
		rng = newSeededRand()
	}
	return &WeightedPicker{rng: rng}
}

func (p *WeightedPicker) Pick(templates []models.AnimalTemplate) int {
	cumulative := make([]int, len(templates))
	total := 0
	for i, t := range templates {
		w := RarityWeights[t.Rarity]
		if w < 1 {
			w = 1
		}
		total += w
		cumulative[i] = total
	}

	p.mu.Lock()
	roll := p.rng.Intn(total) // [0,total)
	p.mu.Unlock()

	lo, hi := 0, len(cumulative)-1
	for lo < hi {
		mid := (lo + hi) >> 1
		if roll < cumulative[mid] {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
