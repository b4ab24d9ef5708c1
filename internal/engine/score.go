package engine

import (
	"math"
	"sort"

	"github.com/pokenator/pokenator/internal/pokedex"
)

// Heuristic bonus magnitudes. Chosen so that a perfect type split always
// outranks a perfect color, size or letter split; validated by the
// termination tests over the full dataset.
const (
	typeRarityWeight      = 0.15
	distinctiveColorBonus = 0.10
	extremeBucketBonus    = 0.10
	letterBonusWeight     = 0.05
)

// distinctiveColors are the ones a player recognizes at a glance; muted
// colors like brown and gray split fine statistically but get hesitant
// answers.
var distinctiveColors = map[string]bool{
	"yellow": true, "red": true, "blue": true, "green": true,
}

// splitScore is maximal (1.0) at a 50/50 split and zero at a trivial one.
func splitScore(matchCount, total int) float64 {
	p := float64(matchCount) / float64(total)
	return 1 - math.Abs(0.5-p)*2
}

// rank returns all eligible questions for the current candidate set, best
// first. The ordering is fully deterministic: score descending, then kind
// priority, then value lexical order.
func (s *Session) rank() []Question {
	n := len(s.candidates)
	var questions []Question

	add := func(kind Kind, value string, matchCount int, bonus float64) {
		if matchCount == 0 || matchCount == n {
			return
		}
		if _, ok := s.asked[askedPair{kind, value}]; ok {
			return
		}
		questions = append(questions, Question{
			Kind:   kind,
			Value:  value,
			Prompt: prompt(kind, value),
			Score:  splitScore(matchCount, n) + bonus,
		})
	}

	if !s.isSkipped(KindType) {
		for value, count := range s.countBy(func(p pokedex.Pokemon) []string {
			vals := make([]string, len(p.Types))
			for i, t := range p.Types {
				vals[i] = string(t)
			}
			return vals
		}) {
			add(KindType, value, count, typeRarityWeight*s.engine.rarity(pokedex.Type(value)))
		}
	}

	if !s.isSkipped(KindColor) {
		for value, count := range s.countBy(func(p pokedex.Pokemon) []string {
			if p.Color == "" {
				return nil
			}
			return []string{string(p.Color)}
		}) {
			var bonus float64
			if distinctiveColors[value] {
				bonus = distinctiveColorBonus
			}
			add(KindColor, value, count, bonus)
		}
	}

	if !s.isSkipped(KindSize) {
		for value, count := range s.countBy(func(p pokedex.Pokemon) []string {
			return []string{string(p.Size)}
		}) {
			var bonus float64
			if value != string(pokedex.SizeMedium) {
				bonus = extremeBucketBonus
			}
			add(KindSize, value, count, bonus)
		}
	}

	if !s.isSkipped(KindWeight) {
		for value, count := range s.countBy(func(p pokedex.Pokemon) []string {
			return []string{string(p.WeightClass)}
		}) {
			var bonus float64
			if value != string(pokedex.WeightMedium) {
				bonus = extremeBucketBonus
			}
			add(KindWeight, value, count, bonus)
		}
	}

	if !s.isSkipped(KindEvolution) {
		for value, count := range s.countBy(func(p pokedex.Pokemon) []string {
			if p.CanEvolve {
				return []string{"true"}
			}
			return []string{"false"}
		}) {
			add(KindEvolution, value, count, 0)
		}
	}

	// Letter questions are reserved for the endgame, with a bonus that grows
	// as the set shrinks.
	if n <= letterThreshold && !s.isSkipped(KindLetter) {
		bonus := letterBonusWeight * float64(letterThreshold-n+1) / float64(letterThreshold)
		for value, count := range s.countBy(func(p pokedex.Pokemon) []string {
			return []string{p.Letter}
		}) {
			add(KindLetter, value, count, bonus)
		}
	}

	sort.Slice(questions, func(i, j int) bool {
		a, b := questions[i], questions[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.Value < b.Value
	})
	return questions
}

// countBy tallies candidate counts per attribute value.
func (s *Session) countBy(values func(pokedex.Pokemon) []string) map[string]int {
	counts := make(map[string]int)
	for _, p := range s.candidates {
		for _, v := range values(p) {
			counts[v]++
		}
	}
	return counts
}
