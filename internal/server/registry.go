package server

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/pokenator/pokenator/internal/engine"
)

// game is one live session plus the question currently awaiting an answer.
// The mutex serializes the ask → answer rhythm per game; different games are
// independent.
type game struct {
	id        string
	createdAt time.Time

	mu       sync.Mutex
	session  *engine.Session
	question *engine.Question
}

// Registry holds live game sessions in memory. Finished games are persisted
// to the history store and can be dropped from here.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*game
}

func NewRegistry() *Registry {
	return &Registry{games: make(map[string]*game)}
}

func (r *Registry) Create(session *engine.Session) *game {
	g := &game{
		id:        newGameID(),
		createdAt: time.Now(),
		session:   session,
	}
	r.mu.Lock()
	r.games[g.id] = g
	r.mu.Unlock()
	return g
}

func (r *Registry) Get(id string) (*game, bool) {
	r.mu.RLock()
	g, ok := r.games[id]
	r.mu.RUnlock()
	return g, ok
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.games, id)
	r.mu.Unlock()
}

func newGameID() string {
	var b [16]byte
	rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
