package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	countrymodels "contactbook/internal/country/models"
	personmetrics "contactbook/internal/person/metrics"
	"contactbook/internal/person/models"
	"contactbook/internal/sentinel"
	dErrors "contactbook/pkg/domain-errors"
	"contactbook/pkg/middleware/requesttime"
)

// PersonStore persists person records.
type PersonStore interface {
	Create(ctx context.Context, person *models.Person) error
	List(ctx context.Context) ([]*models.Person, error)
	ListMatching(ctx context.Context, match func(*models.Person) bool) ([]*models.Person, error)
	FindByID(ctx context.Context, personID uuid.UUID) (*models.Person, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, personID uuid.UUID) (bool, error)
}

// CountryResolver resolves country display names for projections.
type CountryResolver interface {
	GetCountryByCountryID(ctx context.Context, countryID *uuid.UUID) (*countrymodels.CountryResponse, error)
}

// Service owns the person lifecycle: validation, creation, lookup, filtering,
// sorting, updates, deletes. It holds no state of its own; everything lives in
// the store.
type Service struct {
	persons   PersonStore
	countries CountryResolver
	metrics   *personmetrics.Metrics
}

func New(persons PersonStore, countries CountryResolver, metrics *personmetrics.Metrics) *Service {
	return &Service{persons: persons, countries: countries, metrics: metrics}
}

// AddPerson validates the request, assigns a fresh identifier, and persists
// the person. Validation failures carry every violation, not just the first.
func (s *Service) AddPerson(ctx context.Context, req *models.AddPersonRequest) (*models.PersonResponse, error) {
	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	person := req.ToPerson()
	// The service owns identifier generation; whatever key the store assigns
	// on insert is not used for this.
	person.ID = uuid.New()

	if err := s.persons.Create(ctx, person); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create person")
	}

	s.metrics.IncrementPersonCreated()
	return s.toResponse(ctx, person)
}

// GetAllPersons returns every person as a projection. An empty store yields an
// empty slice, never an error.
func (s *Service) GetAllPersons(ctx context.Context) ([]*models.PersonResponse, error) {
	persons, err := s.persons.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list persons")
	}
	out := make([]*models.PersonResponse, 0, len(persons))
	for _, p := range persons {
		resp, err := s.toResponse(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// GetPersonByPersonID returns the projection for the given id, or nil when
// the id is absent or no person matches. A miss is a value, not an error.
func (s *Service) GetPersonByPersonID(ctx context.Context, personID *uuid.UUID) (*models.PersonResponse, error) {
	if personID == nil {
		return nil, nil
	}
	person, err := s.persons.FindByID(ctx, *personID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up person")
	}
	return s.toResponse(ctx, person)
}

// UpdatePerson overwrites every mutable field of the person identified by
// request.PersonID. The ID itself never changes.
func (s *Service) UpdatePerson(ctx context.Context, req *models.UpdatePersonRequest) (*models.PersonResponse, error) {
	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	person, err := s.persons.FindByID(ctx, req.PersonID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "person id does not exist")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up person")
	}

	person.PersonName = req.PersonName
	person.Email = req.Email
	person.DateOfBirth = req.DateOfBirth
	person.Gender = req.Gender
	person.CountryID = req.CountryID
	person.Address = req.Address
	person.ReceiveNewsLetters = req.ReceiveNewsLetters

	if err := s.persons.Update(ctx, person); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "person id does not exist")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update person")
	}

	return s.toResponse(ctx, person)
}

// DeletePerson removes the person. A miss returns false without an error.
func (s *Service) DeletePerson(ctx context.Context, personID *uuid.UUID) (bool, error) {
	if personID == nil {
		return false, dErrors.New(dErrors.CodeBadRequest, "person id is required")
	}
	deleted, err := s.persons.Delete(ctx, *personID)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete person")
	}
	if deleted {
		s.metrics.IncrementPersonDeleted()
	}
	return deleted, nil
}

// toResponse projects an entity, resolving the country display name and
// computing the age from the request-scoped clock.
func (s *Service) toResponse(ctx context.Context, person *models.Person) (*models.PersonResponse, error) {
	resp := person.ToPersonResponse()

	country, err := s.countries.GetCountryByCountryID(ctx, person.CountryID)
	if err != nil {
		return nil, err
	}
	if country != nil {
		resp.Country = country.CountryName
	}

	if person.DateOfBirth != nil {
		age := models.AgeAt(*person.DateOfBirth, requesttime.Now(ctx))
		resp.Age = &age
	}
	return resp, nil
}
