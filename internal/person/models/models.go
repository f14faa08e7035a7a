package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the closed set of accepted gender values. It is stored as its
// string form.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// SortOrder selects ascending or descending ordering.
type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// Person is the stored entity. Optional fields are pointers so absence
// survives the round trip through storage.
type Person struct {
	ID                 uuid.UUID  `json:"id"`
	PersonName         string     `json:"person_name"`
	Email              string     `json:"email"`
	DateOfBirth        *time.Time `json:"date_of_birth"`
	Gender             string     `json:"gender"`
	CountryID          *uuid.UUID `json:"country_id"`
	Address            string     `json:"address"`
	ReceiveNewsLetters bool       `json:"receive_news_letters"`
}
