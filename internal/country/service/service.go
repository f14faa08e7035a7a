package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	countrymetrics "contactbook/internal/country/metrics"
	"contactbook/internal/country/models"
	"contactbook/internal/sentinel"
	dErrors "contactbook/pkg/domain-errors"
)

// CountryStore persists country records.
type CountryStore interface {
	Create(ctx context.Context, country *models.Country) error
	List(ctx context.Context) ([]*models.Country, error)
	FindByID(ctx context.Context, countryID uuid.UUID) (*models.Country, error)
	FindByName(ctx context.Context, name string) (*models.Country, error)
}

// Service manages country reference data.
type Service struct {
	countries CountryStore
	metrics   *countrymetrics.Metrics
}

func New(countries CountryStore, metrics *countrymetrics.Metrics) *Service {
	return &Service{countries: countries, metrics: metrics}
}

// AddCountry creates a country with a fresh server-side identifier. The name
// must be unique (case-sensitive exact match against persisted data).
func (s *Service) AddCountry(ctx context.Context, req *models.AddCountryRequest) (*models.CountryResponse, error) {
	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Read-decide-write duplicate check. The store is the backstop under
	// concurrent creates: postgres enforces a unique index, the memory store
	// holds its lock across check and insert.
	existing, err := s.countries.FindByName(ctx, req.CountryName)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up country")
	}
	if existing != nil {
		return nil, dErrors.New(dErrors.CodeConflict, "country already exists")
	}

	country := req.ToCountry()
	country.ID = uuid.New()

	if err := s.countries.Create(ctx, country); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "country already exists")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create country")
	}

	s.metrics.IncrementCountryCreated()
	return country.ToCountryResponse(), nil
}

// GetAllCountries returns every country as a projection. Order is not
// guaranteed.
func (s *Service) GetAllCountries(ctx context.Context) ([]*models.CountryResponse, error) {
	countries, err := s.countries.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list countries")
	}
	out := make([]*models.CountryResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, c.ToCountryResponse())
	}
	return out, nil
}

// GetCountryByCountryID returns the projection for the given id, or nil when
// the id is absent or no country matches. A miss is a value, not an error.
func (s *Service) GetCountryByCountryID(ctx context.Context, countryID *uuid.UUID) (*models.CountryResponse, error) {
	if countryID == nil {
		return nil, nil
	}
	country, err := s.countries.FindByID(ctx, *countryID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up country")
	}
	return country.ToCountryResponse(), nil
}
