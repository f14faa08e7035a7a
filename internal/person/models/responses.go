package models

import (
	"time"

	"github.com/google/uuid"
)

// PersonResponse is the read-only projection returned to callers. It combines
// stored fields with the resolved country display name and the age computed
// from the date of birth at read time.
type PersonResponse struct {
	PersonID           uuid.UUID  `json:"person_id"`
	PersonName         string     `json:"person_name"`
	Email              string     `json:"email"`
	DateOfBirth        *time.Time `json:"date_of_birth"`
	Age                *int       `json:"age"`
	Gender             string     `json:"gender"`
	CountryID          *uuid.UUID `json:"country_id"`
	Country            string     `json:"country"`
	Address            string     `json:"address"`
	ReceiveNewsLetters bool       `json:"receive_news_letters"`
}

// ToPersonResponse projects the entity. Country name and age are derived by
// the service; this fills the stored fields only.
func (p *Person) ToPersonResponse() *PersonResponse {
	return &PersonResponse{
		PersonID:           p.ID,
		PersonName:         p.PersonName,
		Email:              p.Email,
		DateOfBirth:        p.DateOfBirth,
		Gender:             p.Gender,
		CountryID:          p.CountryID,
		Address:            p.Address,
		ReceiveNewsLetters: p.ReceiveNewsLetters,
	}
}

// Equal compares projections by value over all visible fields.
func (p *PersonResponse) Equal(other *PersonResponse) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.PersonID == other.PersonID &&
		p.PersonName == other.PersonName &&
		p.Email == other.Email &&
		equalTimePtr(p.DateOfBirth, other.DateOfBirth) &&
		equalIntPtr(p.Age, other.Age) &&
		p.Gender == other.Gender &&
		equalUUIDPtr(p.CountryID, other.CountryID) &&
		p.Country == other.Country &&
		p.Address == other.Address &&
		p.ReceiveNewsLetters == other.ReceiveNewsLetters
}

// AgeAt returns whole years between the date of birth and now, flooring at
// the birthday boundary using calendar arithmetic.
func AgeAt(dateOfBirth, now time.Time) int {
	years := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		years--
	}
	return years
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
