package pokedex

// French display labels for the derived attributes. The dataset's names and
// types are already French; colors and buckets are stored in English and
// translated at the edges.

var colorFR = map[Color]string{
	"red":    "rouge",
	"blue":   "bleu",
	"green":  "vert",
	"yellow": "jaune",
	"brown":  "marron",
	"purple": "violet",
	"pink":   "rose",
	"gray":   "gris",
	"black":  "noir",
	"white":  "blanc",
	"orange": "orange",
}

var sizeFR = map[Size]string{
	SizeSmall:  "petit",
	SizeMedium: "moyen",
	SizeLarge:  "grand",
}

var weightFR = map[WeightClass]string{
	WeightLight:  "léger",
	WeightMedium: "moyen",
	WeightHeavy:  "lourd",
}

func FrenchColor(c Color) string {
	if fr, ok := colorFR[c]; ok {
		return fr
	}
	return string(c)
}

func FrenchSize(s Size) string {
	return sizeFR[s]
}

func FrenchWeight(w WeightClass) string {
	return weightFR[w]
}
