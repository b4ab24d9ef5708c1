// Package pokedex supplies the Gen 1 Pokémon records the guessing engine
// works on. Records are loaded once from the embedded dataset, validated,
// enriched with derived attributes, and never mutated afterwards.
package pokedex

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Type is a Gen 1 Pokémon type, in French as the dataset ships it.
type Type string

// Size buckets, derived from height percentile analysis of the dataset.
type Size string

// WeightClass buckets, derived the same way as Size.
type WeightClass string

// Color is a dominant visual color. Empty means unknown.
type Color string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"

	WeightLight  WeightClass = "light"
	WeightMedium WeightClass = "medium"
	WeightHeavy  WeightClass = "heavy"
)

// Bracket thresholds, in metres and kilograms. Upper bounds are inclusive:
// exactly 0.70 m is small, exactly 1.50 m is medium, exactly 9.90 kg is
// light, exactly 56.25 kg is medium.
const (
	SmallMaxHeight  = 0.70
	MediumMaxHeight = 1.50
	LightMaxWeight  = 9.90
	MediumMaxWeight = 56.25
)

var knownTypes = map[Type]bool{
	"Normal": true, "Feu": true, "Eau": true, "Plante": true,
	"Électrik": true, "Glace": true, "Combat": true, "Poison": true,
	"Sol": true, "Vol": true, "Psy": true, "Insecte": true,
	"Roche": true, "Spectre": true, "Dragon": true,
}

var knownColors = map[Color]bool{
	"red": true, "blue": true, "green": true, "yellow": true,
	"brown": true, "purple": true, "pink": true, "gray": true,
	"black": true, "white": true, "orange": true,
}

// Pokemon is a single immutable dataset record.
type Pokemon struct {
	ID          int
	Name        string
	Types       []Type
	Height      float64 // metres
	Weight      float64 // kilograms
	Size        Size
	WeightClass WeightClass
	Color       Color // "" when the dataset has no color for this record
	CanEvolve   bool
	Letter      string // accent-folded lowercase first letter of Name
}

func (p Pokemon) HasType(t Type) bool {
	for _, pt := range p.Types {
		if pt == t {
			return true
		}
	}
	return false
}

// SizeOf buckets a height in metres.
func SizeOf(height float64) Size {
	switch {
	case height <= SmallMaxHeight:
		return SizeSmall
	case height <= MediumMaxHeight:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// WeightClassOf buckets a weight in kilograms.
func WeightClassOf(weight float64) WeightClass {
	switch {
	case weight <= LightMaxWeight:
		return WeightLight
	case weight <= MediumMaxWeight:
		return WeightMedium
	default:
		return WeightHeavy
	}
}

var letterFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FirstLetter returns the accent-folded lowercase first letter of a name,
// so that "Électhor" and "Évoli" sort under "e" like the rest.
func FirstLetter(name string) string {
	folded, _, err := transform.String(letterFolder, name)
	if err != nil || folded == "" {
		folded = name
	}
	for _, r := range folded {
		if unicode.IsLetter(r) {
			return strings.ToLower(string(r))
		}
	}
	return ""
}
