// Package engine implements the question-selection and search-narrowing
// logic: given the set of Pokémon still consistent with the answers so far,
// it picks the yes/no question that best splits the set, applies answers,
// and decides when the game is over. It has zero external dependencies —
// everything here is pure Go over pokedex records.
package engine

import (
	"errors"
	"fmt"

	"github.com/pokenator/pokenator/internal/pokedex"
)

// letterThreshold is the candidate-set size at or below which first-letter
// questions become eligible. Letter questions are an endgame tool; before
// that, attribute questions split better and are easier to answer.
const letterThreshold = 5

// Engine scores questions against a fixed dataset. It is immutable after
// construction and safe to share across sessions.
type Engine struct {
	dataset   []pokedex.Pokemon
	typeCount map[pokedex.Type]int
}

// New builds an engine over the full record set. The dataset is used both as
// the initial candidate set of every session and as the reference for type
// rarity weighting.
func New(dataset []pokedex.Pokemon) (*Engine, error) {
	if len(dataset) == 0 {
		return nil, errors.New("engine: empty dataset")
	}
	typeCount := make(map[pokedex.Type]int)
	for _, p := range dataset {
		for _, t := range p.Types {
			typeCount[t]++
		}
	}
	return &Engine{dataset: dataset, typeCount: typeCount}, nil
}

// Dataset returns the full record set the engine was built over.
func (e *Engine) Dataset() []pokedex.Pokemon {
	return e.dataset
}

// rarity is 0 for a type carried by every record and approaches 1 for a type
// carried by almost none. Rare types discriminate strongly, so their
// questions are worth asking even off a 50/50 split.
func (e *Engine) rarity(t pokedex.Type) float64 {
	return 1 - float64(e.typeCount[t])/float64(len(e.dataset))
}

// StartSession begins a game over the full dataset.
func (e *Engine) StartSession() *Session {
	candidates := make([]pokedex.Pokemon, len(e.dataset))
	copy(candidates, e.dataset)
	return &Session{
		engine:     e,
		candidates: candidates,
		asked:      make(map[askedPair]struct{}),
		skipped:    make(map[Kind]struct{}),
		state:      StateInProgress,
	}
}

// ErrSessionOver is returned by Apply once a session reached Solved or
// NoMatch.
var ErrSessionOver = fmt.Errorf("session is over")
