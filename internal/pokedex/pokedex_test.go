package pokedex

import (
	"errors"
	"testing"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	records, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 151 {
		t.Fatalf("expected 151 records, got %d", len(records))
	}

	for i, p := range records {
		if p.ID != i+1 {
			t.Fatalf("record %d: expected id %d, got %d", i, i+1, p.ID)
		}
	}

	pikachu := records[24]
	if pikachu.Name != "Pikachu" {
		t.Fatalf("expected Pikachu at id 25, got %q", pikachu.Name)
	}
	if pikachu.Height != 0.4 || pikachu.Weight != 6.0 {
		t.Errorf("Pikachu measurements: got %.1fm %.1fkg", pikachu.Height, pikachu.Weight)
	}
	if !pikachu.HasType("Électrik") {
		t.Errorf("Pikachu should be Électrik, got %v", pikachu.Types)
	}
	if pikachu.Size != SizeSmall || pikachu.WeightClass != WeightLight {
		t.Errorf("Pikachu buckets: got %s/%s", pikachu.Size, pikachu.WeightClass)
	}
	if pikachu.Color != "yellow" {
		t.Errorf("Pikachu color: got %q", pikachu.Color)
	}
	if !pikachu.CanEvolve {
		t.Error("Pikachu should be able to evolve")
	}

	dracaufeu := records[5]
	if dracaufeu.CanEvolve {
		t.Error("Dracaufeu is a final form")
	}

	evoli := records[132]
	if evoli.Letter != "e" {
		t.Errorf("Évoli letter: expected e, got %q", evoli.Letter)
	}
	if !evoli.CanEvolve {
		t.Error("Évoli should be able to evolve")
	}
	aquali := records[133]
	if aquali.CanEvolve {
		t.Error("Aquali is a final form")
	}
}

func TestBucketBoundaries(t *testing.T) {
	sizes := []struct {
		height float64
		want   Size
	}{
		{0.2, SizeSmall},
		{0.70, SizeSmall}, // boundary is inclusive
		{0.71, SizeMedium},
		{1.50, SizeMedium}, // boundary is inclusive
		{1.51, SizeLarge},
		{8.8, SizeLarge},
	}
	for _, tc := range sizes {
		if got := SizeOf(tc.height); got != tc.want {
			t.Errorf("SizeOf(%.2f) = %s, want %s", tc.height, got, tc.want)
		}
	}

	weights := []struct {
		weight float64
		want   WeightClass
	}{
		{0.1, WeightLight},
		{9.90, WeightLight}, // boundary is inclusive
		{9.91, WeightMedium},
		{56.25, WeightMedium}, // boundary is inclusive
		{56.26, WeightHeavy},
		{460.0, WeightHeavy},
	}
	for _, tc := range weights {
		if got := WeightClassOf(tc.weight); got != tc.want {
			t.Errorf("WeightClassOf(%.2f) = %s, want %s", tc.weight, got, tc.want)
		}
	}
}

func TestFirstLetter(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Pikachu", "p"},
		{"Électhor", "e"},
		{"Évoli", "e"},
		{"Aéromite", "a"},
		{"M. Mime", "m"},
	}
	for _, tc := range cases {
		if got := FirstLetter(tc.name); got != tc.want {
			t.Errorf("FirstLetter(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestParseRejectsMalformedRecords(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"unknown type", `[{"id":1,"nom":"X","types":["Plasma"],"taille":1.0,"poids":1.0,"evolution":[1]}]`},
		{"missing types", `[{"id":1,"nom":"X","types":[],"taille":1.0,"poids":1.0,"evolution":[1]}]`},
		{"missing height", `[{"id":1,"nom":"X","types":["Feu"],"poids":1.0,"evolution":[1]}]`},
		{"missing weight", `[{"id":1,"nom":"X","types":["Feu"],"taille":1.0,"evolution":[1]}]`},
		{"bad id", `[{"id":0,"nom":"X","types":["Feu"],"taille":1.0,"poids":1.0,"evolution":[0]}]`},
		{"missing name", `[{"id":1,"types":["Feu"],"taille":1.0,"poids":1.0,"evolution":[1]}]`},
		{"unknown color", `[{"id":1,"nom":"X","types":["Feu"],"taille":1.0,"poids":1.0,"evolution":[1],"visual_attributes":{"primary_color":"teal"}}]`},
		{"duplicate id", `[{"id":1,"nom":"X","types":["Feu"],"taille":1.0,"poids":1.0,"evolution":[1]},{"id":1,"nom":"Y","types":["Eau"],"taille":1.0,"poids":1.0,"evolution":[1]}]`},
		{"empty", `[]`},
	}
	for _, tc := range cases {
		if _, err := parse([]byte(tc.json)); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		} else if !errors.Is(err, ErrInvalidDataset) {
			t.Errorf("%s: error not marked invalid: %v", tc.name, err)
		}
	}
}

func TestColorMayBeAbsent(t *testing.T) {
	records, err := parse([]byte(`[{"id":1,"nom":"X","types":["Feu"],"taille":1.0,"poids":1.0,"evolution":[1,2]}]`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if records[0].Color != "" {
		t.Errorf("expected empty color, got %q", records[0].Color)
	}
	if !records[0].CanEvolve {
		t.Error("expected can-evolve from chain position")
	}
}
