package service

import (
	"context"
	"strings"

	"contactbook/internal/person/models"
)

// Searchable field names accepted by GetFilteredPersons.
const (
	FieldPersonName         = "person_name"
	FieldEmail              = "email"
	FieldDateOfBirth        = "date_of_birth"
	FieldAge                = "age"
	FieldGender             = "gender"
	FieldCountry            = "country"
	FieldAddress            = "address"
	FieldReceiveNewsLetters = "receive_news_letters"
)

// dateOfBirthLayout renders birth dates for textual search, so partial dates
// like "11 1993" still match.
const dateOfBirthLayout = "02 01 2006"

// searchFields maps a field name to a selector returning the field's string
// representation, or nil when the value is absent. A closed map instead of a
// switch keeps the supported set explicit.
var searchFields = map[string]func(p *models.PersonResponse) *string{
	FieldPersonName: func(p *models.PersonResponse) *string { return nonEmpty(p.PersonName) },
	FieldEmail:      func(p *models.PersonResponse) *string { return nonEmpty(p.Email) },
	FieldDateOfBirth: func(p *models.PersonResponse) *string {
		if p.DateOfBirth == nil {
			return nil
		}
		formatted := p.DateOfBirth.Format(dateOfBirthLayout)
		return &formatted
	},
	FieldGender:  func(p *models.PersonResponse) *string { return nonEmpty(p.Gender) },
	FieldCountry: func(p *models.PersonResponse) *string { return nonEmpty(p.Country) },
	FieldAddress: func(p *models.PersonResponse) *string { return nonEmpty(p.Address) },
}

// GetFilteredPersons returns the persons whose searchBy field contains
// searchString, case-insensitively. An empty searchBy or searchString, or an
// unknown field name, returns everyone. Persons whose field value is absent
// are included rather than excluded; missing data passes filters.
func (s *Service) GetFilteredPersons(ctx context.Context, searchBy, searchString string) ([]*models.PersonResponse, error) {
	all, err := s.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}
	if searchBy == "" || searchString == "" {
		return all, nil
	}

	selector, ok := searchFields[searchBy]
	if !ok {
		return all, nil
	}

	needle := strings.ToLower(searchString)
	matching := make([]*models.PersonResponse, 0, len(all))
	for _, p := range all {
		value := selector(p)
		if value == nil || strings.Contains(strings.ToLower(*value), needle) {
			matching = append(matching, p)
		}
	}
	return matching, nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
