package models

import "time"

// CollectionStats summarizes a collection snapshot for the dex overview.
type CollectionStats struct {
	Total       int            `json:"total"`
	UniqueTypes int            `json:"uniqueTypes"`
	UniqueKeys  int            `json:"uniqueSpecies"`
	ByRarity    map[Rarity]int `json:"byRarity"`
	Legendary   int            `json:"legendary"`
	Rare        int            `json:"rare"`
	NewestAt    *time.Time     `json:"newestAt,omitempty"`
}

// Summarize computes stats over a newest-first collection.
func Summarize(animals []CapturedAnimal) CollectionStats {
	stats := CollectionStats{
		Total:    len(animals),
		ByRarity: make(map[Rarity]int, len(Rarities)),
	}
	for _, r := range Rarities {
		stats.ByRarity[r] = 0
	}

	types := make(map[AnimalType]struct{})
	keys := make(map[string]struct{})
	for _, a := range animals {
		types[a.Type] = struct{}{}
		keys[a.Key] = struct{}{}
		stats.ByRarity[a.Rarity]++
	}
	stats.UniqueTypes = len(types)
	stats.UniqueKeys = len(keys)
	stats.Legendary = stats.ByRarity[RarityLegendary]
	stats.Rare = stats.ByRarity[RarityRare]

	if len(animals) > 0 {
		newest := animals[0].CapturedAt
		stats.NewestAt = &newest
	}
	return stats
}
