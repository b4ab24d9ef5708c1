package server

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// FinishedGame is one row of the persisted game history.
type FinishedGame struct {
	ID         string `json:"id"`
	Outcome    string `json:"outcome"` // solved, no_match, abandoned
	Turns      int    `json:"turns"`
	Solution   string `json:"solution,omitempty"`
	FinishedAt string `json:"finishedAt"`
}

// HistoryStore persists finished games. Live sessions never touch it.
type HistoryStore interface {
	RecordGame(ctx context.Context, outcome string, turns int, solution string) error
	ListGames(ctx context.Context, limit int) ([]FinishedGame, error)
}
