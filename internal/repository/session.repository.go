package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"swasthya/internal/models"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

// SessionRepository keeps sessions in process memory only. Callers always get
// copies; changing one never changes the stored session.
type SessionRepository interface {
	Create(session *models.Session) error
	FindByID(id string) (*models.Session, error)
	Save(session *models.Session) error
	Update(id string, fn func(*models.Session) error) (*models.Session, error)
	Delete(id string) error
	Count() int
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionRepository expires sessions idle for longer than ttl. A zero ttl
// keeps them for the life of the process.
func NewSessionRepository(ttl time.Duration) SessionRepository {
	return newSessionRepository(ttl, time.Now)
}

func newSessionRepository(ttl time.Duration, now func() time.Time) *sessionRepository {
	return &sessionRepository{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      now,
	}
}

func (r *sessionRepository) Create(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return fmt.Errorf("%w: %s", ErrSessionExists, session.ID)
	}
	now := r.now()
	session.CreatedAt = now
	session.UpdatedAt = now
	r.sessions[session.ID] = session.Clone()
	return nil
}

func (r *sessionRepository) FindByID(id string) (*models.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if r.expired(s) {
		r.mu.Lock()
		delete(r.sessions, id)
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s expired", ErrSessionNotFound, id)
	}
	found := s.Clone()
	return &found, nil
}

// Save replaces a stored session. Saving an unknown id is an error.
func (r *sessionRepository) Save(session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, session.ID)
	}
	session.UpdatedAt = r.now()
	r.sessions[session.ID] = session.Clone()
	return nil
}

// Update loads, mutates and stores a session under one write lock, so
// concurrent updates to the same session are applied one after another. fn
// works on a copy; when it fails nothing is stored. fn must not call back into
// the repository.
func (r *sessionRepository) Update(id string, fn func(*models.Session) error) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if r.expired(s) {
		delete(r.sessions, id)
		return nil, fmt.Errorf("%w: %s expired", ErrSessionNotFound, id)
	}

	next := s.Clone()
	if err := fn(&next); err != nil {
		return nil, err
	}
	next.ID = id
	next.UpdatedAt = r.now()
	r.sessions[id] = next.Clone()
	return &next, nil
}

func (r *sessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

func (r *sessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *sessionRepository) expired(s models.Session) bool {
	return r.ttl > 0 && r.now().Sub(s.UpdatedAt) > r.ttl
}
