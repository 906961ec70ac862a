package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// SessionRegistry holds one Controller per visitor, keyed by session id.
type SessionRegistry struct {
	svc *TownInfoService

	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

func NewSessionRegistry(svc *TownInfoService) *SessionRegistry {
	return &SessionRegistry{
		svc:      svc,
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Get returns the controller for id and marks the session as seen.
func (r *SessionRegistry) Get(id string) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s.lastSeen = r.now()
	return s.ctrl, true
}

// GetOrCreate returns the controller for id, starting a new session
// (with a fresh id) when id is unknown.
func (r *SessionRegistry) GetOrCreate(id string) (string, *Controller) {
	if ctrl, ok := r.Get(id); ok {
		return id, ctrl
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	newID := uuid.NewString()
	ctrl := NewController(r.svc)
	r.sessions[newID] = &session{ctrl: ctrl, lastSeen: r.now()}
	return newID, ctrl
}

// Sweep drops sessions idle for longer than maxIdle and returns how many.
func (r *SessionRegistry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	n := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
