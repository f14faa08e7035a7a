// Package seeder loads demo data for local development. The records mirror
// the fixtures the application shipped with, so the UI has something to show
// on first run.
package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	countrymodels "contactbook/internal/country/models"
	countryservice "contactbook/internal/country/service"
	personmodels "contactbook/internal/person/models"
	personservice "contactbook/internal/person/service"
)

type demoPerson struct {
	name               string
	email              string
	dateOfBirth        string
	gender             personmodels.Gender
	country            string
	address            string
	receiveNewsLetters bool
}

var demoPersons = []demoPerson{
	{"Elia", "eesposito0@cdbaby.com", "1993-11-14", personmodels.GenderMale, "Japan", "23073 Sycamore Junction", false},
	{"Sondra", "shirsthouse1@yolasite.com", "1995-06-19", personmodels.GenderFemale, "Brazil", "88 Anzinger Trail", true},
	{"Kippie", "ktretter2@slashdot.org", "1993-09-20", personmodels.GenderMale, "Canada", "07837 Florence", true},
	{"Hershel", "hweber3@creativecommons.org", "1992-10-05", personmodels.GenderMale, "Spain", "931 Green Ridge Park", false},
	{"Jillene", "jmacaree4@netlog.com", "1994-10-23", personmodels.GenderFemale, "Portugal", "3398 Doe Crossing Parkway", false},
}

// Seed creates one country per distinct demo country name and a demo person
// referencing each. Intended for an empty store; duplicate country names fail.
func Seed(ctx context.Context, countries *countryservice.Service, persons *personservice.Service) error {
	countryIDs := make(map[string]uuid.UUID)
	for _, dp := range demoPersons {
		if _, ok := countryIDs[dp.country]; ok {
			continue
		}
		created, err := countries.AddCountry(ctx, &countrymodels.AddCountryRequest{CountryName: dp.country})
		if err != nil {
			return fmt.Errorf("seed country %q: %w", dp.country, err)
		}
		countryIDs[dp.country] = created.CountryID
	}

	for _, dp := range demoPersons {
		dob, err := time.Parse("2006-01-02", dp.dateOfBirth)
		if err != nil {
			return fmt.Errorf("seed person %q: %w", dp.name, err)
		}
		countryID := countryIDs[dp.country]
		if _, err := persons.AddPerson(ctx, &personmodels.AddPersonRequest{
			PersonName:         dp.name,
			Email:              dp.email,
			DateOfBirth:        &dob,
			Gender:             string(dp.gender),
			CountryID:          &countryID,
			Address:            dp.address,
			ReceiveNewsLetters: dp.receiveNewsLetters,
		}); err != nil {
			return fmt.Errorf("seed person %q: %w", dp.name, err)
		}
	}
	return nil
}
