package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/person/models"
)

func seedSearchSet(t *testing.T, f *fixture) {
	t.Helper()
	japan := f.addCountry(t, "Japan")
	brazil := f.addCountry(t, "Brazil")

	dob := time.Date(1993, time.November, 14, 0, 0, 0, 0, time.UTC)
	f.addPerson(t, &models.AddPersonRequest{
		PersonName: "Person", Email: "person@example.com", Gender: string(models.GenderMale),
		CountryID: &japan, DateOfBirth: &dob, Address: "somewhere",
	})
	f.addPerson(t, &models.AddPersonRequest{
		PersonName: "Name", Email: "name@example.com", Gender: string(models.GenderFemale),
		CountryID: &brazil,
	})
	f.addPerson(t, &models.AddPersonRequest{
		PersonName: "3", Email: "three@example.com", Gender: string(models.GenderOther),
		CountryID: &japan,
	})
}

func names(persons []*models.PersonResponse) []string {
	out := make([]string, 0, len(persons))
	for _, p := range persons {
		out = append(out, p.PersonName)
	}
	return out
}

func TestGetFilteredPersons_EmptySearchByReturnsAll(t *testing.T) {
	f := newFixture()
	seedSearchSet(t, f)

	got, err := f.persons.GetFilteredPersons(context.Background(), "", "na")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestGetFilteredPersons_EmptySearchStringReturnsAll(t *testing.T) {
	f := newFixture()
	seedSearchSet(t, f)

	got, err := f.persons.GetFilteredPersons(context.Background(), FieldPersonName, "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestGetFilteredPersons_ByName(t *testing.T) {
	f := newFixture()
	seedSearchSet(t, f)

	got, err := f.persons.GetFilteredPersons(context.Background(), FieldPersonName, "na")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Name"}, names(got))
}

func TestGetFilteredPersons_CaseInsensitive(t *testing.T) {
	f := newFixture()
	seedSearchSet(t, f)

	got, err := f.persons.GetFilteredPersons(context.Background(), FieldPersonName, "NA")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Name"}, names(got))
}

func TestGetFilteredPersons_ByCountryUsesDisplayName(t *testing.T) {
	f := newFixture()
	seedSearchSet(t, f)

	got, err := f.persons.GetFilteredPersons(context.Background(), FieldCountry, "jap")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Person", "3"}, names(got))
}

func TestGetFilteredPersons_ByDateOfBirthTextual(t *testing.T) {
	f := newFixture()
	seedSearchSet(t, f)

	// "14 11 1993" in day month year form; a partial fragment matches, and the
	// two persons without a birth date pass through inclusively.
	got, err := f.persons.GetFilteredPersons(context.Background(), FieldDateOfBirth, "11 1993")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Person", "Name", "3"}, names(got))

	got, err = f.persons.GetFilteredPersons(context.Background(), FieldDateOfBirth, "12 1993")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Name", "3"}, names(got))
}

func TestGetFilteredPersons_NullFieldValuesMatchInclusively(t *testing.T) {
	f := newFixture()
	seedSearchSet(t, f)

	// Only one person has an address; the other two have none and are
	// deliberately included rather than excluded.
	got, err := f.persons.GetFilteredPersons(context.Background(), FieldAddress, "somewhere")
	require.NoError(t, err)
	assert.Len(t, got, 3)

	got, err = f.persons.GetFilteredPersons(context.Background(), FieldAddress, "nowhere")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Name", "3"}, names(got))
}

func TestGetFilteredPersons_UnknownFieldReturnsAll(t *testing.T) {
	f := newFixture()
	seedSearchSet(t, f)

	got, err := f.persons.GetFilteredPersons(context.Background(), "shoe_size", "42")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
