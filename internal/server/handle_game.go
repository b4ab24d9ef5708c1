package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pokenator/pokenator/internal/engine"
)

type QuestionInfo struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Prompt string `json:"prompt"`
}

type SolutionInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type GameStateResponse struct {
	GameID     string        `json:"gameId"`
	State      string        `json:"state"`
	Turn       int           `json:"turn"`
	Remaining  int           `json:"remaining"`
	Question   *QuestionInfo `json:"question,omitempty"`
	Candidates []string      `json:"candidates,omitempty"`
	Solution   *SolutionInfo `json:"solution,omitempty"`
	Message    string        `json:"message,omitempty"`
}

type AnswerRequest struct {
	Answer string `json:"answer"` // yes, no, unknown
}

// candidatePreviewMax mirrors the CLI: list remaining names once the set is
// small enough to be interesting.
const candidatePreviewMax = 5

// stateResponse advances the game to its next step and renders it. Caller
// must hold g.mu.
func stateResponse(g *game) GameStateResponse {
	step := g.session.Next()
	g.question = step.Question

	resp := GameStateResponse{
		GameID:    g.id,
		State:     step.State.String(),
		Turn:      g.session.Turn(),
		Remaining: g.session.Remaining(),
	}

	switch step.State {
	case engine.StateInProgress:
		resp.Question = &QuestionInfo{
			Kind:   step.Question.Kind.String(),
			Value:  step.Question.Value,
			Prompt: step.Question.Prompt,
		}
		if resp.Remaining <= candidatePreviewMax {
			for _, p := range g.session.Candidates() {
				resp.Candidates = append(resp.Candidates, p.Name)
			}
		}
	case engine.StateSolved:
		resp.Solution = &SolutionInfo{ID: step.Solution.ID, Name: step.Solution.Name}
	case engine.StateNoMatch:
		resp.Message = engine.NoMatchMessage
	}
	return resp
}

func handleNewGame(eng *engine.Engine, games *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := games.Create(eng.StartSession())

		g.mu.Lock()
		resp := stateResponse(g)
		g.mu.Unlock()

		if resp.Question != nil {
			broker.Publish(g.id, GameEvent{
				Type:      "question",
				Turn:      resp.Turn,
				Prompt:    resp.Question.Prompt,
				Remaining: resp.Remaining,
			})
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

func handleGameState(games *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := games.Get(chi.URLParam(r, "gameID"))
		if !ok {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}

		g.mu.Lock()
		resp := stateResponse(g)
		g.mu.Unlock()

		writeJSON(w, http.StatusOK, resp)
	}
}

func handleAnswer(logger *slog.Logger, games *Registry, broker *Broker, history HistoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := games.Get(chi.URLParam(r, "gameID"))
		if !ok {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}

		var req AnswerRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		answer, ok := parseAnswer(req.Answer)
		if !ok {
			writeError(w, http.StatusBadRequest, "answer must be yes, no or unknown")
			return
		}

		g.mu.Lock()
		defer g.mu.Unlock()

		if g.session.State() != engine.StateInProgress {
			writeError(w, http.StatusConflict, "game is over")
			return
		}
		if g.question == nil {
			// No question pending: the caller answered before asking.
			writeError(w, http.StatusConflict, "no question pending")
			return
		}

		q := *g.question
		if _, err := g.session.Apply(q, answer); err != nil {
			writeError(w, http.StatusConflict, "game is over")
			return
		}
		g.question = nil

		broker.Publish(g.id, GameEvent{
			Type:      "answer",
			Turn:      g.session.Turn(),
			Prompt:    q.Prompt,
			Answer:    req.Answer,
			Remaining: g.session.Remaining(),
		})

		resp := stateResponse(g)

		switch g.session.State() {
		case engine.StateSolved:
			broker.Publish(g.id, GameEvent{
				Type:     "solved",
				Turn:     resp.Turn,
				Solution: resp.Solution.Name,
			})
			recordHistory(r, logger, history, "solved", resp.Turn, resp.Solution.Name)
		case engine.StateNoMatch:
			broker.Publish(g.id, GameEvent{Type: "no_match", Turn: resp.Turn})
			recordHistory(r, logger, history, "no_match", resp.Turn, "")
		default:
			broker.Publish(g.id, GameEvent{
				Type:      "question",
				Turn:      resp.Turn,
				Prompt:    resp.Question.Prompt,
				Remaining: resp.Remaining,
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// recordHistory persists a finished game. Failures are logged, not surfaced:
// the player already has their outcome.
func recordHistory(r *http.Request, logger *slog.Logger, history HistoryStore, outcome string, turns int, solution string) {
	if err := history.RecordGame(r.Context(), outcome, turns, solution); err != nil {
		logger.Warn("recording finished game", "outcome", outcome, "error", err)
	}
}

func parseAnswer(s string) (engine.Answer, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return engine.AnswerYes, true
	case "no":
		return engine.AnswerNo, true
	case "unknown":
		return engine.AnswerUnknown, true
	default:
		return 0, false
	}
}
