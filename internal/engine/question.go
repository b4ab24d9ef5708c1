package engine

import (
	"fmt"
	"strings"

	"github.com/pokenator/pokenator/internal/pokedex"
)

// Kind identifies the attribute a question asks about. The declaration
// order is also the deterministic tie-break priority: type beats color
// beats size beats weight beats evolution beats letter, with direct name
// guesses last.
type Kind int

const (
	KindType Kind = iota
	KindColor
	KindSize
	KindWeight
	KindEvolution
	KindLetter
	KindGuess
)

func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindColor:
		return "color"
	case KindSize:
		return "size"
	case KindWeight:
		return "weight"
	case KindEvolution:
		return "evolution"
	case KindLetter:
		return "letter"
	case KindGuess:
		return "guess"
	default:
		return "unknown"
	}
}

// Question is one candidate question, recomputed fresh every turn.
type Question struct {
	Kind   Kind
	Value  string
	Prompt string
	Score  float64
}

// matches reports whether a record answers "yes" to the question.
func matches(p pokedex.Pokemon, kind Kind, value string) bool {
	switch kind {
	case KindType:
		return p.HasType(pokedex.Type(value))
	case KindColor:
		return p.Color != "" && p.Color == pokedex.Color(value)
	case KindSize:
		return string(p.Size) == value
	case KindWeight:
		return string(p.WeightClass) == value
	case KindEvolution:
		return p.CanEvolve == (value == "true")
	case KindLetter:
		return p.Letter == value
	case KindGuess:
		return p.Name == value
	default:
		return false
	}
}

// prompt builds the French question text, mirroring the tone the original
// game uses.
func prompt(kind Kind, value string) string {
	switch kind {
	case KindType:
		return fmt.Sprintf("Est-ce que votre Pokémon est de type %s?", value)
	case KindColor:
		return fmt.Sprintf("Est-ce que votre Pokémon est principalement %s?", pokedex.FrenchColor(pokedex.Color(value)))
	case KindSize:
		switch value {
		case string(pokedex.SizeSmall):
			return "Est-ce que votre Pokémon est petit (moins de 0.70m)?"
		case string(pokedex.SizeLarge):
			return "Est-ce que votre Pokémon est grand (plus de 1.50m)?"
		default:
			return "Est-ce que votre Pokémon est moyen (en taille)?"
		}
	case KindWeight:
		switch value {
		case string(pokedex.WeightLight):
			return "Est-ce que votre Pokémon est léger (moins de 9.90kg)?"
		case string(pokedex.WeightHeavy):
			return "Est-ce que votre Pokémon est lourd (plus de 56.25kg)?"
		default:
			return "Est-ce que votre Pokémon est moyen (en poids)?"
		}
	case KindEvolution:
		if value == "true" {
			return "Est-ce que votre Pokémon peut encore évoluer? (comme Salamèche, Carapuce, etc.)"
		}
		return "Est-ce que votre Pokémon est à sa forme finale? (comme Dracaufeu, Papilusion, etc.)"
	case KindLetter:
		return fmt.Sprintf("Est-ce que le nom de votre Pokémon commence par la lettre %s?", strings.ToUpper(value))
	case KindGuess:
		return fmt.Sprintf("Est-ce que c'est %s?", value)
	default:
		return ""
	}
}

// NoMatchMessage is what callers show when contradictory answers emptied the
// candidate set.
const NoMatchMessage = "Je ne trouve pas de Pokémon correspondant à vos réponses!"
