package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	dob := time.Date(1993, time.November, 14, 0, 0, 0, 0, time.UTC)

	t.Run("before birthday", func(t *testing.T) {
		now := time.Date(2024, time.November, 13, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 30, AgeAt(dob, now))
	})

	t.Run("on birthday", func(t *testing.T) {
		now := time.Date(2024, time.November, 14, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 31, AgeAt(dob, now))
	})

	t.Run("after birthday", func(t *testing.T) {
		now := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 31, AgeAt(dob, now))
	})
}

func TestPersonResponseEqual(t *testing.T) {
	id := uuid.New()
	countryID := uuid.New()
	dob := time.Date(1995, time.June, 19, 0, 0, 0, 0, time.UTC)
	age := 29

	base := func() *PersonResponse {
		dobCopy := dob
		ageCopy := age
		cidCopy := countryID
		return &PersonResponse{
			PersonID:    id,
			PersonName:  "Sondra",
			Email:       "sondra@example.com",
			DateOfBirth: &dobCopy,
			Age:         &ageCopy,
			Gender:      string(GenderFemale),
			CountryID:   &cidCopy,
			Country:     "Japan",
			Address:     "88 Anzinger Trail",
		}
	}

	t.Run("value equality over distinct pointers", func(t *testing.T) {
		assert.True(t, base().Equal(base()))
	})

	t.Run("differs by a field", func(t *testing.T) {
		other := base()
		other.Country = "Brazil"
		assert.False(t, base().Equal(other))
	})

	t.Run("nil optional fields", func(t *testing.T) {
		a, b := base(), base()
		a.DateOfBirth, a.Age = nil, nil
		b.DateOfBirth, b.Age = nil, nil
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(base()))
	})

	t.Run("nil receivers", func(t *testing.T) {
		var nilResp *PersonResponse
		assert.True(t, nilResp.Equal(nil))
		assert.False(t, nilResp.Equal(base()))
	})
}
