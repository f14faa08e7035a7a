package models

import (
	"time"

	"github.com/google/uuid"

	strutil "contactbook/pkg/string"
	"contactbook/pkg/validation"
)

// AddPersonRequest carries the fields needed to create a person. Field
// constraints mirror the entity: names and emails cap at 40 characters,
// addresses at 200.
type AddPersonRequest struct {
	PersonName         string     `json:"person_name" validate:"required,notblank,max=40"`
	Email              string     `json:"email" validate:"required,email,max=40"`
	DateOfBirth        *time.Time `json:"date_of_birth"`
	Gender             string     `json:"gender" validate:"required,oneof=Male Female Other"`
	CountryID          *uuid.UUID `json:"country_id" validate:"required"`
	Address            string     `json:"address" validate:"max=200"`
	ReceiveNewsLetters bool       `json:"receive_news_letters"`
}

func (r *AddPersonRequest) Normalize() {
	if r == nil {
		return
	}
	strutil.TrimStrings(&r.PersonName, &r.Email, &r.Address)
}

// Validate reports every failing constraint at once.
func (r *AddPersonRequest) Validate() error {
	return validation.Validate(r)
}

// ToPerson converts the request into a Person entity. The ID is assigned by
// the service, not here.
func (r *AddPersonRequest) ToPerson() *Person {
	return &Person{
		PersonName:         r.PersonName,
		Email:              r.Email,
		DateOfBirth:        r.DateOfBirth,
		Gender:             r.Gender,
		CountryID:          r.CountryID,
		Address:            r.Address,
		ReceiveNewsLetters: r.ReceiveNewsLetters,
	}
}

// UpdatePersonRequest overwrites every mutable field of an existing person.
// The person ID itself is immutable.
type UpdatePersonRequest struct {
	PersonID           uuid.UUID  `json:"person_id" validate:"required"`
	PersonName         string     `json:"person_name" validate:"required,notblank,max=40"`
	Email              string     `json:"email" validate:"required,email,max=40"`
	DateOfBirth        *time.Time `json:"date_of_birth"`
	Gender             string     `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	CountryID          *uuid.UUID `json:"country_id"`
	Address            string     `json:"address" validate:"max=200"`
	ReceiveNewsLetters bool       `json:"receive_news_letters"`
}

func (r *UpdatePersonRequest) Normalize() {
	if r == nil {
		return
	}
	strutil.TrimStrings(&r.PersonName, &r.Email, &r.Address)
}

// Validate reports every failing constraint at once.
func (r *UpdatePersonRequest) Validate() error {
	return validation.Validate(r)
}
