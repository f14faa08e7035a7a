package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"contactbook/internal/person/models"
	"contactbook/internal/sentinel"
)

// InMemory stores persons in memory.
type InMemory struct {
	mu      sync.RWMutex
	persons map[uuid.UUID]*models.Person
}

// NewInMemory creates an in-memory person store.
func NewInMemory() *InMemory {
	return &InMemory{persons: make(map[uuid.UUID]*models.Person)}
}

func (s *InMemory) Create(_ context.Context, p *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *p
	s.persons[p.ID] = &stored
	return nil
}

// List returns all persons. Order is not guaranteed.
func (s *InMemory) List(_ context.Context) ([]*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Person, 0, len(s.persons))
	for _, p := range s.persons {
		copied := *p
		out = append(out, &copied)
	}
	return out, nil
}

// ListMatching returns the persons satisfying the predicate.
func (s *InMemory) ListMatching(_ context.Context, match func(*models.Person) bool) ([]*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Person
	for _, p := range s.persons {
		if match(p) {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *InMemory) FindByID(_ context.Context, personID uuid.UUID) (*models.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.persons[personID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) Update(_ context.Context, p *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[p.ID]; !ok {
		return sentinel.ErrNotFound
	}
	stored := *p
	s.persons[p.ID] = &stored
	return nil
}

// Delete removes the person and reports whether it existed.
func (s *InMemory) Delete(_ context.Context, personID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[personID]; !ok {
		return false, nil
	}
	delete(s.persons, personID)
	return true, nil
}
