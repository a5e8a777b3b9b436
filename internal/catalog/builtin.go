package catalog

import "github.com/dimitrije/critterdex-api/internal/models"

// Default returns the built-in species table.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic("catalog: invalid built-in table: " + err.Error())
	}
	return c
}

var builtin = []models.AnimalTemplate{
	{
		Key:            "cat",
		Name:           "Domestic Cat",
		ScientificName: "Felis catus",
		Type:           models.TypeMammal,
		Habitat:        "Homes, farms and cities worldwide",
		Diet:           "Carnivore",
		Lifespan:       "12-18 years",
		Size:           "46 cm body, 30 cm tail",
		FunFacts: []string{
			"Cats spend around 70% of their lives asleep.",
			"A group of cats is called a clowder.",
			"Cats can rotate their ears 180 degrees.",
		},
		Rarity: models.RarityCommon,
		Stats:  models.Stats{Speed: 65, Strength: 30, Intelligence: 70, Cuteness: 95, Stealth: 90},
	},
	{
		Key:            "dog",
		Name:           "Domestic Dog",
		ScientificName: "Canis familiaris",
		Type:           models.TypeMammal,
		Habitat:        "Everywhere people live",
		Diet:           "Omnivore",
		Lifespan:       "10-13 years",
		Size:           "15-110 cm at the shoulder",
		FunFacts: []string{
			"A dog's nose print is as unique as a human fingerprint.",
			"Dogs can understand around 165 words and gestures.",
		},
		Rarity: models.RarityCommon,
		Stats:  models.Stats{Speed: 70, Strength: 55, Intelligence: 75, Cuteness: 95, Stealth: 35},
	},
	{
		Key:            "squirrel",
		Name:           "Eastern Gray Squirrel",
		ScientificName: "Sciurus carolinensis",
		Type:           models.TypeMammal,
		Habitat:        "Deciduous woodland and city parks",
		Diet:           "Nuts, seeds and fungi",
		Lifespan:       "6 years",
		Size:           "23-30 cm body",
		FunFacts: []string{
			"Squirrels bury thousands of nuts and forget many, planting trees.",
			"They pretend to bury food to fool watching thieves.",
		},
		Rarity: models.RarityCommon,
		Stats:  models.Stats{Speed: 75, Strength: 15, Intelligence: 60, Cuteness: 85, Stealth: 60},
	},
	{
		Key:            "pigeon",
		Name:           "Rock Pigeon",
		ScientificName: "Columba livia",
		Type:           models.TypeBird,
		Habitat:        "Cliffs and city ledges",
		Diet:           "Seeds and scraps",
		Lifespan:       "3-5 years in the wild",
		Size:           "29-37 cm",
		FunFacts: []string{
			"Pigeons can recognize themselves in a mirror.",
			"They were used to carry messages in both world wars.",
		},
		Rarity: models.RarityCommon,
		Stats:  models.Stats{Speed: 60, Strength: 15, Intelligence: 55, Cuteness: 45, Stealth: 20},
	},
	{
		Key:            "honeybee",
		Name:           "Western Honey Bee",
		ScientificName: "Apis mellifera",
		Type:           models.TypeInsect,
		Habitat:        "Meadows, orchards and gardens",
		Diet:           "Nectar and pollen",
		Lifespan:       "5-6 weeks for workers",
		Size:           "12-15 mm",
		FunFacts: []string{
			"Bees communicate flower locations with a waggle dance.",
			"A single colony can produce over 50 kg of honey a year.",
		},
		Rarity: models.RarityCommon,
		Stats:  models.Stats{Speed: 45, Strength: 10, Intelligence: 40, Cuteness: 60, Stealth: 25},
	},
	{
		Key:            "red-fox",
		Name:           "Red Fox",
		ScientificName: "Vulpes vulpes",
		Type:           models.TypeMammal,
		Habitat:        "Forests, grasslands and suburbs",
		Diet:           "Omnivore",
		Lifespan:       "3-4 years",
		Size:           "45-90 cm body",
		FunFacts: []string{
			"Red foxes use the Earth's magnetic field to pounce on prey.",
			"Their tail, or brush, keeps them warm in winter.",
		},
		Rarity: models.RarityUncommon,
		Stats:  models.Stats{Speed: 75, Strength: 40, Intelligence: 80, Cuteness: 85, Stealth: 80},
	},
	{
		Key:            "tree-frog",
		Name:           "Red-eyed Tree Frog",
		ScientificName: "Agalychnis callidryas",
		Type:           models.TypeAmphibian,
		Habitat:        "Tropical rainforest canopy",
		Diet:           "Insects",
		Lifespan:       "5 years",
		Size:           "5-7 cm",
		FunFacts: []string{
			"Flashing its red eyes startles predators.",
			"It sleeps by day glued to the underside of leaves.",
		},
		Rarity: models.RarityUncommon,
		Stats:  models.Stats{Speed: 40, Strength: 10, Intelligence: 30, Cuteness: 80, Stealth: 70},
	},
	{
		Key:            "garden-spider",
		Name:           "European Garden Spider",
		ScientificName: "Araneus diadematus",
		Type:           models.TypeArachnid,
		Habitat:        "Gardens, hedges and meadows",
		Diet:           "Flying insects",
		Lifespan:       "1 year",
		Size:           "6-20 mm",
		FunFacts: []string{
			"It rebuilds its orb web almost every night.",
			"Spider silk is stronger than steel of the same thickness.",
		},
		Rarity: models.RarityUncommon,
		Stats:  models.Stats{Speed: 30, Strength: 15, Intelligence: 25, Cuteness: 20, Stealth: 75},
	},
	{
		Key:            "goldfish",
		Name:           "Goldfish",
		ScientificName: "Carassius auratus",
		Type:           models.TypeFish,
		Habitat:        "Ponds and aquariums",
		Diet:           "Omnivore",
		Lifespan:       "10-15 years",
		Size:           "10-20 cm",
		FunFacts: []string{
			"Goldfish can remember things for months, not seconds.",
			"They can see ultraviolet and infrared light.",
		},
		Rarity: models.RarityUncommon,
		Stats:  models.Stats{Speed: 35, Strength: 5, Intelligence: 35, Cuteness: 70, Stealth: 15},
	},
	{
		Key:            "barn-owl",
		Name:           "Barn Owl",
		ScientificName: "Tyto alba",
		Type:           models.TypeBird,
		Habitat:        "Farmland and open country",
		Diet:           "Small mammals",
		Lifespan:       "4 years",
		Size:           "33-39 cm",
		FunFacts: []string{
			"Barn owls can hunt in complete darkness by sound alone.",
			"Their feathers are shaped for near-silent flight.",
		},
		Rarity: models.RarityRare,
		Stats:  models.Stats{Speed: 70, Strength: 35, Intelligence: 65, Cuteness: 75, Stealth: 95},
	},
	{
		Key:            "sea-turtle",
		Name:           "Green Sea Turtle",
		ScientificName: "Chelonia mydas",
		Type:           models.TypeMarine,
		Habitat:        "Tropical and subtropical seas",
		Diet:           "Seagrass and algae",
		Lifespan:       "80 years",
		Size:           "80-120 cm shell",
		FunFacts: []string{
			"Females return to the beach where they hatched to lay eggs.",
			"They can hold their breath for hours while resting.",
		},
		Rarity: models.RarityRare,
		Stats:  models.Stats{Speed: 35, Strength: 60, Intelligence: 50, Cuteness: 75, Stealth: 40},
	},
	{
		Key:            "chameleon",
		Name:           "Panther Chameleon",
		ScientificName: "Furcifer pardalis",
		Type:           models.TypeReptile,
		Habitat:        "Madagascar rainforest",
		Diet:           "Insects",
		Lifespan:       "5-7 years",
		Size:           "40-50 cm",
		FunFacts: []string{
			"Its eyes move independently for 360-degree vision.",
			"Its tongue can be twice the length of its body.",
		},
		Rarity: models.RarityRare,
		Stats:  models.Stats{Speed: 15, Strength: 20, Intelligence: 45, Cuteness: 65, Stealth: 95},
	},
	{
		Key:            "octopus",
		Name:           "Common Octopus",
		ScientificName: "Octopus vulgaris",
		Type:           models.TypeMarine,
		Habitat:        "Rocky coastal waters",
		Diet:           "Crabs and shellfish",
		Lifespan:       "1-2 years",
		Size:           "up to 1 m arm span",
		FunFacts: []string{
			"An octopus has three hearts and blue blood.",
			"Two thirds of its neurons are in its arms.",
		},
		Rarity: models.RarityRare,
		Stats:  models.Stats{Speed: 50, Strength: 45, Intelligence: 95, Cuteness: 55, Stealth: 100},
	},
	{
		Key:            "snow-leopard",
		Name:           "Snow Leopard",
		ScientificName: "Panthera uncia",
		Type:           models.TypeMammal,
		Habitat:        "High mountains of Central Asia",
		Diet:           "Carnivore",
		Lifespan:       "15-18 years",
		Size:           "75-150 cm body",
		FunFacts: []string{
			"It can leap up to six times its body length.",
			"Its thick tail doubles as a scarf while sleeping.",
		},
		Rarity: models.RarityLegendary,
		Stats:  models.Stats{Speed: 85, Strength: 80, Intelligence: 75, Cuteness: 90, Stealth: 95},
	},
	{
		Key:            "axolotl",
		Name:           "Axolotl",
		ScientificName: "Ambystoma mexicanum",
		Type:           models.TypeAmphibian,
		Habitat:        "Lake Xochimilco, Mexico",
		Diet:           "Worms and small fish",
		Lifespan:       "10-15 years",
		Size:           "15-45 cm",
		FunFacts: []string{
			"Axolotls can regrow limbs, spinal cord and parts of the heart.",
			"They keep their larval gills their whole life.",
		},
		Rarity: models.RarityLegendary,
		Stats:  models.Stats{Speed: 20, Strength: 10, Intelligence: 40, Cuteness: 100, Stealth: 50},
	},
	{
		Key:            "komodo-dragon",
		Name:           "Komodo Dragon",
		ScientificName: "Varanus komodoensis",
		Type:           models.TypeReptile,
		Habitat:        "Indonesian islands",
		Diet:           "Carnivore",
		Lifespan:       "30 years",
		Size:           "2-3 m",
		FunFacts: []string{
			"The largest living lizard on Earth.",
			"Females can reproduce without a mate.",
		},
		Rarity: models.RarityLegendary,
		Stats:  models.Stats{Speed: 45, Strength: 95, Intelligence: 50, Cuteness: 20, Stealth: 60},
	},
}
