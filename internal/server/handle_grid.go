package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pokenator/pokenator/internal/pokedex"
)

//go:embed templates/grid.html
var templatesFS embed.FS

var gridTmpl = template.Must(template.ParseFS(templatesFS, "templates/grid.html"))

// PokemonCard is one record flattened for display: id zero-padded to three
// digits, measurements to one decimal, buckets and color as capitalized
// French labels.
type PokemonCard struct {
	Number     string   `json:"number"`
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	Height     string   `json:"height"`
	Weight     string   `json:"weight"`
	SizeTag    string   `json:"sizeTag"`
	WeightTag  string   `json:"weightTag"`
	Color      string   `json:"color,omitempty"`      // CSS color name for the dot
	ColorLabel string   `json:"colorLabel,omitempty"` // capitalized French name
	CanEvolve  bool     `json:"canEvolve"`
}

var frTitle = cases.Title(language.French)

func newCards(dataset []pokedex.Pokemon) []PokemonCard {
	cards := make([]PokemonCard, 0, len(dataset))
	for _, p := range dataset {
		types := make([]string, len(p.Types))
		for i, t := range p.Types {
			types[i] = string(t)
		}
		card := PokemonCard{
			Number:    fmt.Sprintf("%03d", p.ID),
			Name:      p.Name,
			Types:     types,
			Height:    fmt.Sprintf("%.1f m", p.Height),
			Weight:    fmt.Sprintf("%.1f kg", p.Weight),
			SizeTag:   frTitle.String(pokedex.FrenchSize(p.Size)),
			WeightTag: frTitle.String(pokedex.FrenchWeight(p.WeightClass)),
			CanEvolve: p.CanEvolve,
		}
		if p.Color != "" {
			card.Color = string(p.Color)
			card.ColorLabel = frTitle.String(pokedex.FrenchColor(p.Color))
		}
		cards = append(cards, card)
	}
	return cards
}

// handleGrid renders the read-only card grid. The dataset never changes, so
// the cards are built once.
func handleGrid(dataset []pokedex.Pokemon) http.HandlerFunc {
	cards := newCards(dataset)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := gridTmpl.Execute(w, cards); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
		}
	}
}

// handlePokedex serves the same cards as JSON.
func handlePokedex(dataset []pokedex.Pokemon) http.HandlerFunc {
	cards := newCards(dataset)

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, cards)
	}
}
