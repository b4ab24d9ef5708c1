package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Pokenator API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Pokenator guessing game and Pokédex grid.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/pokedex
	getPokedex, _ := r.NewOperationContext(http.MethodGet, "/api/pokedex")
	getPokedex.SetSummary("List Pokédex cards")
	getPokedex.SetDescription("Returns all 151 records as display cards, the same data the grid page renders.")
	getPokedex.AddRespStructure([]PokemonCard{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getPokedex)

	// POST /api/games
	postGame, _ := r.NewOperationContext(http.MethodPost, "/api/games")
	postGame.SetSummary("Start a game")
	postGame.SetDescription("Starts a guessing session over the full dataset and returns the first question.")
	postGame.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	_ = r.AddOperation(postGame)

	// GET /api/games/{gameID}
	getGame, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}")
	getGame.SetSummary("Get game state")
	getGame.SetDescription("Returns the current state and pending question of a game.")
	getGame.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getGame.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getGame)

	// POST /api/games/{gameID}/answer
	postAnswer, _ := r.NewOperationContext(http.MethodPost, "/api/games/{gameID}/answer")
	postAnswer.SetSummary("Answer the pending question")
	postAnswer.SetDescription("Applies yes, no or unknown to the pending question and returns the next step. Unknown skips the attribute without narrowing the search.")
	postAnswer.AddReqStructure(AnswerRequest{})
	postAnswer.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	postAnswer.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postAnswer)

	// GET /api/games/{gameID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/games/{gameID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of questions, answers and the outcome of one game.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	getEvents.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getEvents)

	// GET /api/history
	getHistory, _ := r.NewOperationContext(http.MethodGet, "/api/history")
	getHistory.SetSummary("List finished games")
	getHistory.SetDescription("Returns the most recent finished games with outcome and turn count.")
	getHistory.AddRespStructure([]FinishedGame{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getHistory)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
