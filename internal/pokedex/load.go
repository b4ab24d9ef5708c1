package pokedex

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
)

//go:embed pokemon_gen1.json
var datasetFS embed.FS

// ErrInvalidDataset marks dataset validation failures. These are fatal at
// startup, never recoverable mid-game.
var ErrInvalidDataset = errors.New("invalid dataset")

// rawRecord mirrors the dataset file's field names (French, as produced by
// the original enrichment pipeline).
type rawRecord struct {
	ID        int      `json:"id"`
	Name      string   `json:"nom"`
	Types     []Type   `json:"types"`
	Height    *float64 `json:"taille"`
	Weight    *float64 `json:"poids"`
	Evolution []int    `json:"evolution"`
	Visual    struct {
		PrimaryColor Color `json:"primary_color"`
	} `json:"visual_attributes"`
}

// Load parses and validates the embedded dataset, returning records ordered
// by id with all derived attributes filled in.
func Load() ([]Pokemon, error) {
	data, err := datasetFS.ReadFile("pokemon_gen1.json")
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]Pokemon, error) {
	var raw []rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing: %v", ErrInvalidDataset, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrInvalidDataset)
	}

	seenIDs := make(map[int]bool, len(raw))
	seenNames := make(map[string]bool, len(raw))
	records := make([]Pokemon, 0, len(raw))

	for i, r := range raw {
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("%w: record %d (%q): %v", ErrInvalidDataset, i, r.Name, err)
		}
		if seenIDs[r.ID] {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidDataset, r.ID)
		}
		if seenNames[r.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidDataset, r.Name)
		}
		seenIDs[r.ID] = true
		seenNames[r.Name] = true

		records = append(records, Pokemon{
			ID:          r.ID,
			Name:        r.Name,
			Types:       r.Types,
			Height:      *r.Height,
			Weight:      *r.Weight,
			Size:        SizeOf(*r.Height),
			WeightClass: WeightClassOf(*r.Weight),
			Color:       r.Visual.PrimaryColor,
			CanEvolve:   canEvolve(r.Evolution, r.ID),
			Letter:      FirstLetter(r.Name),
		})
	}

	return records, nil
}

func validate(r rawRecord) error {
	if r.ID <= 0 {
		return fmt.Errorf("id %d out of range", r.ID)
	}
	if r.Name == "" {
		return errors.New("missing name")
	}
	if len(r.Types) < 1 || len(r.Types) > 2 {
		return fmt.Errorf("expected 1 or 2 types, got %d", len(r.Types))
	}
	for _, t := range r.Types {
		if !knownTypes[t] {
			return fmt.Errorf("unknown type %q", t)
		}
	}
	if r.Height == nil || *r.Height <= 0 {
		return errors.New("missing or non-positive height")
	}
	if r.Weight == nil || *r.Weight <= 0 {
		return errors.New("missing or non-positive weight")
	}
	if c := r.Visual.PrimaryColor; c != "" && !knownColors[c] {
		return fmt.Errorf("unknown color %q", c)
	}
	return nil
}

// canEvolve reports whether id has a successor in its evolution chain.
func canEvolve(chain []int, id int) bool {
	for i, cid := range chain {
		if cid == id {
			return i < len(chain)-1
		}
	}
	return false
}
