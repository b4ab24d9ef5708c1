package server

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/pokenator/pokenator/internal/engine"
)

func addRoutes(r chi.Router, logger *slog.Logger, eng *engine.Engine, history HistoryStore, db *sql.DB) {
	games := NewRegistry()
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Pokenator API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	// Web grid — read-only card view of the full dataset.
	r.Get("/", handleGrid(eng.Dataset()))
	r.Get("/api/pokedex", handlePokedex(eng.Dataset()))

	// Guessing game — one session per game id, turn-based.
	r.Route("/api/games", func(r chi.Router) {
		r.Post("/", handleNewGame(eng, games, broker))
		r.Get("/{gameID}", handleGameState(games))
		r.Post("/{gameID}/answer", handleAnswer(logger, games, broker, history))
		r.Get("/{gameID}/events", handleEvents(games, broker))
	})

	r.Get("/api/history", handleHistory(history))
}
