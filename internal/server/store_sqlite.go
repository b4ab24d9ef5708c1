package server

import (
	"context"
	"database/sql"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) RecordGame(ctx context.Context, outcome string, turns int, solution string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO games (outcome, turns, solution)
		VALUES (?, ?, ?)
	`, outcome, turns, solution)
	return err
}

func (s *SQLiteStore) ListGames(ctx context.Context, limit int) ([]FinishedGame, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, outcome, turns, solution, finished_at
		FROM games
		ORDER BY finished_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []FinishedGame
	for rows.Next() {
		var g FinishedGame
		if err := rows.Scan(&g.ID, &g.Outcome, &g.Turns, &g.Solution, &g.FinishedAt); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}
