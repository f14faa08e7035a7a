package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"contactbook/internal/country/models"
	"contactbook/internal/sentinel"
)

// InMemory stores countries in memory. The mutex is held across the
// name-uniqueness check and the insert, so duplicates can only arise across
// processes, not across goroutines.
type InMemory struct {
	mu        sync.RWMutex
	countries map[uuid.UUID]*models.Country
	nameIdx   map[string]uuid.UUID
}

// NewInMemory creates an in-memory country store.
func NewInMemory() *InMemory {
	return &InMemory{
		countries: make(map[uuid.UUID]*models.Country),
		nameIdx:   make(map[string]uuid.UUID),
	}
}

// Create inserts the country if the name is not already taken. Name matching
// is case-sensitive exact match.
func (s *InMemory) Create(_ context.Context, c *models.Country) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.nameIdx[c.Name]; exists {
		return fmt.Errorf("country name must be unique: %w", sentinel.ErrAlreadyUsed)
	}
	stored := *c
	s.countries[c.ID] = &stored
	s.nameIdx[c.Name] = c.ID
	return nil
}

// List returns all countries. Order is not guaranteed.
func (s *InMemory) List(_ context.Context) ([]*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Country, 0, len(s.countries))
	for _, c := range s.countries {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

// FindByID retrieves a country by its UUID.
func (s *InMemory) FindByID(_ context.Context, countryID uuid.UUID) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.countries[countryID]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

// FindByName retrieves a country by name (case-sensitive exact match).
func (s *InMemory) FindByName(_ context.Context, name string) (*models.Country, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.nameIdx[name]; ok {
		copied := *s.countries[id]
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}
