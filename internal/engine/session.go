package engine

import (
	"github.com/pokenator/pokenator/internal/pokedex"
)

// State is a session's lifecycle position.
type State int

const (
	StateInProgress State = iota
	StateSolved
	StateNoMatch
)

func (s State) String() string {
	switch s {
	case StateInProgress:
		return "in_progress"
	case StateSolved:
		return "solved"
	case StateNoMatch:
		return "no_match"
	default:
		return "unknown"
	}
}

// Answer is the player's response to a question. Unknown is a first-class
// third value: it retires the attribute kind from scoring without filtering
// the candidate set, and must never be conflated with No.
type Answer int

const (
	AnswerYes Answer = iota
	AnswerNo
	AnswerUnknown
)

type askedPair struct {
	kind  Kind
	value string
}

// Session owns one game: the shrinking candidate set, the log of asked
// attribute pairs, and a turn counter. Not safe for concurrent use — one
// session belongs to one caller.
type Session struct {
	engine     *Engine
	candidates []pokedex.Pokemon
	asked      map[askedPair]struct{}
	skipped    map[Kind]struct{}
	turn       int
	state      State
}

// Step is the result of Next: either the question to ask, or a terminal
// outcome with the solved record when there is one.
type Step struct {
	State    State
	Question *Question
	Solution *pokedex.Pokemon
}

func (s *Session) State() State { return s.state }
func (s *Session) Turn() int    { return s.turn }

// Remaining is the current candidate-set size.
func (s *Session) Remaining() int { return len(s.candidates) }

// Candidates returns a copy of the current candidate set, in dataset order.
func (s *Session) Candidates() []pokedex.Pokemon {
	out := make([]pokedex.Pokemon, len(s.candidates))
	copy(out, s.candidates)
	return out
}

// Next returns the best question for the current candidate set, or the
// terminal outcome. It does not mutate the session: calling it repeatedly
// on identical state yields the identical step.
func (s *Session) Next() Step {
	switch s.state {
	case StateNoMatch:
		return Step{State: StateNoMatch}
	case StateSolved:
		sol := s.candidates[0]
		return Step{State: StateSolved, Solution: &sol}
	}

	if len(s.candidates) == 0 {
		return Step{State: StateNoMatch}
	}
	if len(s.candidates) == 1 {
		sol := s.candidates[0]
		return Step{State: StateSolved, Solution: &sol}
	}

	if ranked := s.rank(); len(ranked) > 0 {
		q := ranked[0]
		return Step{State: StateInProgress, Question: &q}
	}

	// Nothing separates the remaining candidates: guess them directly,
	// lowest id first. A "no" removes the guessed one, so this always
	// terminates. Skip names already guessed in case the player answered
	// "unknown" to a guess.
	guess := s.candidates[0].Name
	for _, p := range s.candidates {
		if _, ok := s.asked[askedPair{KindGuess, p.Name}]; !ok {
			guess = p.Name
			break
		}
	}
	q := Question{Kind: KindGuess, Value: guess, Prompt: prompt(KindGuess, guess)}
	return Step{State: StateInProgress, Question: &q}
}

// Apply records the question as asked and filters the candidate set by the
// answer. The candidate set only ever shrinks and the asked log only ever
// grows. An Unknown answer retires the question's kind from scoring but
// leaves the candidate set untouched.
func (s *Session) Apply(q Question, answer Answer) (State, error) {
	if s.state != StateInProgress {
		return s.state, ErrSessionOver
	}

	s.asked[askedPair{q.Kind, q.Value}] = struct{}{}
	s.turn++

	if answer == AnswerUnknown {
		s.skipped[q.Kind] = struct{}{}
		return s.state, nil
	}

	wantMatch := answer == AnswerYes
	kept := s.candidates[:0]
	for _, p := range s.candidates {
		if matches(p, q.Kind, q.Value) == wantMatch {
			kept = append(kept, p)
		}
	}
	s.candidates = kept

	switch len(s.candidates) {
	case 0:
		s.state = StateNoMatch
	case 1:
		s.state = StateSolved
	}
	return s.state, nil
}

func (s *Session) isSkipped(k Kind) bool {
	_, ok := s.skipped[k]
	return ok
}
