package engine

import (
	"testing"

	"github.com/pokenator/pokenator/internal/pokedex"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	dataset, err := pokedex.Load()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	e, err := New(dataset)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func findRecord(t *testing.T, dataset []pokedex.Pokemon, name string) pokedex.Pokemon {
	t.Helper()
	for _, p := range dataset {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("record %q not in dataset", name)
	return pokedex.Pokemon{}
}

// answerFor plays the role of an honest player thinking of target.
func answerFor(target pokedex.Pokemon, q Question) Answer {
	if matches(target, q.Kind, q.Value) {
		return AnswerYes
	}
	return AnswerNo
}

func TestFirstQuestionIsRareTypeSplit(t *testing.T) {
	e := testEngine(t)
	s := e.StartSession()
	s.candidates = []pokedex.Pokemon{
		findRecord(t, e.Dataset(), "Pikachu"),
		findRecord(t, e.Dataset(), "Dracaufeu"),
	}

	step := s.Next()
	if step.State != StateInProgress || step.Question == nil {
		t.Fatalf("expected a question, got state %v", step.State)
	}
	q := step.Question
	if q.Kind != KindType || q.Value != "Électrik" {
		t.Fatalf("expected the Électrik type question, got %v %q (score %.3f)", q.Kind, q.Value, q.Score)
	}
	if q.Score <= 1.0 {
		t.Errorf("expected perfect split plus rarity bonus, got score %.3f", q.Score)
	}

	if _, err := s.Apply(*q, AnswerYes); err != nil {
		t.Fatalf("apply: %v", err)
	}
	step = s.Next()
	if step.State != StateSolved {
		t.Fatalf("expected solved, got %v", step.State)
	}
	if step.Solution == nil || step.Solution.Name != "Pikachu" {
		t.Fatalf("expected Pikachu, got %+v", step.Solution)
	}
}

func TestNextIsDeterministic(t *testing.T) {
	e := testEngine(t)

	s1 := e.StartSession()
	s2 := e.StartSession()

	for i := 0; i < 5; i++ {
		a, b := s1.Next(), s2.Next()
		if a.State != b.State {
			t.Fatalf("turn %d: states diverged: %v vs %v", i, a.State, b.State)
		}
		if a.Question == nil || b.Question == nil {
			t.Fatalf("turn %d: expected questions on both sessions", i)
		}
		if *a.Question != *b.Question {
			t.Fatalf("turn %d: questions diverged: %+v vs %+v", i, a.Question, b.Question)
		}

		// Repeated calls on the same state return the same question.
		again := s1.Next()
		if *again.Question != *a.Question {
			t.Fatalf("turn %d: Next not idempotent: %+v vs %+v", i, again.Question, a.Question)
		}

		s1.Apply(*a.Question, AnswerNo)
		s2.Apply(*b.Question, AnswerNo)
	}
}

func TestApplyIsMonotonic(t *testing.T) {
	e := testEngine(t)
	s := e.StartSession()
	target := findRecord(t, e.Dataset(), "Léviator")

	prevRemaining := s.Remaining()
	prevAsked := len(s.asked)

	for s.State() == StateInProgress {
		step := s.Next()
		if step.Question == nil {
			break
		}
		if _, err := s.Apply(*step.Question, answerFor(target, *step.Question)); err != nil {
			t.Fatalf("apply: %v", err)
		}
		if s.Remaining() > prevRemaining {
			t.Fatalf("candidate set grew: %d -> %d", prevRemaining, s.Remaining())
		}
		if len(s.asked) <= prevAsked {
			t.Fatalf("asked log did not grow: %d -> %d", prevAsked, len(s.asked))
		}
		prevRemaining = s.Remaining()
		prevAsked = len(s.asked)
	}
}

// Every record must be found by honest play within a bounded number of
// turns, and every intermediate question must split the candidate set
// non-trivially.
func TestTerminationForEveryRecord(t *testing.T) {
	e := testEngine(t)
	const maxTurns = 20

	for _, target := range e.Dataset() {
		s := e.StartSession()

		for turn := 0; ; turn++ {
			if turn > maxTurns {
				t.Fatalf("%s: not solved after %d turns", target.Name, maxTurns)
			}
			step := s.Next()
			if step.State == StateSolved {
				if step.Solution.ID != target.ID {
					t.Fatalf("%s: solved as %s", target.Name, step.Solution.Name)
				}
				break
			}
			if step.State == StateNoMatch {
				t.Fatalf("%s: no-match under honest play", target.Name)
			}

			q := step.Question
			if q.Kind != KindGuess {
				n, m := s.Remaining(), 0
				for _, p := range s.Candidates() {
					if matches(p, q.Kind, q.Value) {
						m++
					}
				}
				if m == 0 || m == n {
					t.Fatalf("%s: trivial split %d/%d for %v %q", target.Name, m, n, q.Kind, q.Value)
				}
			}

			if _, err := s.Apply(*q, answerFor(target, *q)); err != nil {
				t.Fatalf("%s: apply: %v", target.Name, err)
			}
		}
	}
}

func TestUnknownAnswerSkipsKindWithoutFiltering(t *testing.T) {
	e := testEngine(t)
	s := e.StartSession()

	step := s.Next()
	q := *step.Question
	before := s.Remaining()

	state, err := s.Apply(q, AnswerUnknown)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if state != StateInProgress {
		t.Fatalf("expected in_progress, got %v", state)
	}
	if s.Remaining() != before {
		t.Fatalf("unknown answer filtered candidates: %d -> %d", before, s.Remaining())
	}
	if s.Turn() != 1 {
		t.Fatalf("expected turn 1, got %d", s.Turn())
	}

	next := s.Next()
	if next.Question.Kind == q.Kind {
		t.Fatalf("kind %v offered again after unknown answer", q.Kind)
	}
}

func TestContradictoryAnswersYieldNoMatch(t *testing.T) {
	e := testEngine(t)
	s := e.StartSession()

	q := Question{Kind: KindType, Value: "Électrik", Prompt: prompt(KindType, "Électrik")}
	if _, err := s.Apply(q, AnswerYes); err != nil {
		t.Fatalf("apply yes: %v", err)
	}

	state, err := s.Apply(q, AnswerNo)
	if err != nil {
		t.Fatalf("apply no: %v", err)
	}
	if state != StateNoMatch {
		t.Fatalf("expected no_match, got %v", state)
	}
	if s.Remaining() != 0 {
		t.Fatalf("expected empty candidate set, got %d", s.Remaining())
	}

	step := s.Next()
	if step.State != StateNoMatch {
		t.Fatalf("expected no_match step, got %v", step.State)
	}

	if _, err := s.Apply(q, AnswerYes); err != ErrSessionOver {
		t.Fatalf("expected ErrSessionOver, got %v", err)
	}
}

func TestLetterQuestionSeparatesTwins(t *testing.T) {
	e := testEngine(t)
	s := e.StartSession()
	// Kicklee and Tygnon: same type, color, size and weight buckets, both
	// final forms. Only their names differ.
	s.candidates = []pokedex.Pokemon{
		findRecord(t, e.Dataset(), "Kicklee"),
		findRecord(t, e.Dataset(), "Tygnon"),
	}

	step := s.Next()
	if step.Question == nil || step.Question.Kind != KindLetter {
		t.Fatalf("expected a letter question, got %+v", step.Question)
	}

	target := findRecord(t, e.Dataset(), "Tygnon")
	s.Apply(*step.Question, answerFor(target, *step.Question))
	final := s.Next()
	if final.State != StateSolved || final.Solution.Name != "Tygnon" {
		t.Fatalf("expected Tygnon solved, got %+v", final)
	}
}

func TestGuessFallbackWhenNothingSeparates(t *testing.T) {
	twin := func(id int, name string) pokedex.Pokemon {
		return pokedex.Pokemon{
			ID: id, Name: name, Types: []pokedex.Type{"Normal"},
			Height: 1.0, Weight: 20.0,
			Size: pokedex.SizeMedium, WeightClass: pokedex.WeightMedium,
			Color: "brown", Letter: "t",
		}
	}
	dataset := []pokedex.Pokemon{twin(1, "Tauros A"), twin(2, "Tauros B")}
	e, err := New(dataset)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	s := e.StartSession()
	step := s.Next()
	if step.Question == nil || step.Question.Kind != KindGuess {
		t.Fatalf("expected a guess question, got %+v", step.Question)
	}
	if step.Question.Value != "Tauros A" {
		t.Fatalf("expected lowest-id guess first, got %q", step.Question.Value)
	}

	s.Apply(*step.Question, AnswerNo)
	final := s.Next()
	if final.State != StateSolved || final.Solution.Name != "Tauros B" {
		t.Fatalf("expected Tauros B solved, got %+v", final)
	}
}
