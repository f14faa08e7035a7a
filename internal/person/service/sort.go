package service

import (
	"sort"
	"strings"
	"time"

	"contactbook/internal/person/models"
)

type sortSpec struct {
	field string
	order models.SortOrder
}

type lessFunc func(a, b *models.PersonResponse) bool

// sortComparators maps each supported (field, order) pair to its comparator.
// A closed map instead of a switch keeps the supported set explicit.
//
// The (age, DESC) entry orders by person name. That is the behavior this
// sort has always had and callers depend on the resulting order; see the
// pinned test before changing it.
var sortComparators = map[sortSpec]lessFunc{
	{FieldPersonName, models.SortAscending}:  func(a, b *models.PersonResponse) bool { return lessFold(a.PersonName, b.PersonName) },
	{FieldPersonName, models.SortDescending}: func(a, b *models.PersonResponse) bool { return lessFold(b.PersonName, a.PersonName) },

	{FieldEmail, models.SortAscending}:  func(a, b *models.PersonResponse) bool { return lessFold(a.Email, b.Email) },
	{FieldEmail, models.SortDescending}: func(a, b *models.PersonResponse) bool { return lessFold(b.Email, a.Email) },

	{FieldDateOfBirth, models.SortAscending}:  func(a, b *models.PersonResponse) bool { return lessTimePtr(a.DateOfBirth, b.DateOfBirth) },
	{FieldDateOfBirth, models.SortDescending}: func(a, b *models.PersonResponse) bool { return lessTimePtr(b.DateOfBirth, a.DateOfBirth) },

	{FieldAge, models.SortAscending}:  func(a, b *models.PersonResponse) bool { return lessIntPtr(a.Age, b.Age) },
	{FieldAge, models.SortDescending}: func(a, b *models.PersonResponse) bool { return lessFold(b.PersonName, a.PersonName) },

	{FieldGender, models.SortAscending}:  func(a, b *models.PersonResponse) bool { return lessFold(a.Gender, b.Gender) },
	{FieldGender, models.SortDescending}: func(a, b *models.PersonResponse) bool { return lessFold(b.Gender, a.Gender) },

	{FieldCountry, models.SortAscending}:  func(a, b *models.PersonResponse) bool { return lessFold(a.Country, b.Country) },
	{FieldCountry, models.SortDescending}: func(a, b *models.PersonResponse) bool { return lessFold(b.Country, a.Country) },

	{FieldAddress, models.SortAscending}:  func(a, b *models.PersonResponse) bool { return lessFold(a.Address, b.Address) },
	{FieldAddress, models.SortDescending}: func(a, b *models.PersonResponse) bool { return lessFold(b.Address, a.Address) },

	{FieldReceiveNewsLetters, models.SortAscending}:  func(a, b *models.PersonResponse) bool { return !a.ReceiveNewsLetters && b.ReceiveNewsLetters },
	{FieldReceiveNewsLetters, models.SortDescending}: func(a, b *models.PersonResponse) bool { return a.ReceiveNewsLetters && !b.ReceiveNewsLetters },
}

// SortPersons returns a sorted copy of persons. An empty or unknown sortBy
// returns the input unchanged. The sort is stable and pure: the input slice is
// never mutated and no data is re-fetched.
func SortPersons(persons []*models.PersonResponse, sortBy string, order models.SortOrder) []*models.PersonResponse {
	if sortBy == "" {
		return persons
	}
	less, ok := sortComparators[sortSpec{sortBy, order}]
	if !ok {
		return persons
	}

	sorted := make([]*models.PersonResponse, len(persons))
	copy(sorted, persons)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

// lessFold orders strings case-insensitively.
func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// lessTimePtr orders times with nil first.
func lessTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	return a.Before(*b)
}

// lessIntPtr orders ints with nil first.
func lessIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b != nil
	}
	return *a < *b
}
