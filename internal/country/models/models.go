package models

import (
	"github.com/google/uuid"

	"contactbook/pkg/validation"
)

// Country is reference data a person can point at. Countries are created once
// and never updated or deleted.
type Country struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// AddCountryRequest carries the fields needed to create a country.
type AddCountryRequest struct {
	CountryName string `json:"country_name" validate:"required,notblank"`
}

func (r *AddCountryRequest) Validate() error {
	return validation.Validate(r)
}

// ToCountry converts the request into a Country entity. The ID is assigned by
// the service, not here.
func (r *AddCountryRequest) ToCountry() *Country {
	return &Country{Name: r.CountryName}
}

// CountryResponse is the read-only projection returned to callers.
type CountryResponse struct {
	CountryID   uuid.UUID `json:"country_id"`
	CountryName string    `json:"country_name"`
}

// ToCountryResponse projects the entity for callers.
func (c *Country) ToCountryResponse() *CountryResponse {
	return &CountryResponse{CountryID: c.ID, CountryName: c.Name}
}
