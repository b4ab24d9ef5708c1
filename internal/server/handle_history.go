package server

import (
	"net/http"
)

const historyLimit = 50

func handleHistory(history HistoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := history.ListGames(r.Context(), historyLimit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if games == nil {
			games = []FinishedGame{}
		}
		writeJSON(w, http.StatusOK, games)
	}
}
