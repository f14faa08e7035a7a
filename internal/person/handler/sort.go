package handler

import (
	"contactbook/internal/person/models"
	"contactbook/internal/person/service"
)

// defaultSortBy orders person listings by name when the caller does not say
// otherwise, matching the list page's default column.
const defaultSortBy = service.FieldPersonName

// sortPersons translates the sortOrder query value and delegates to the
// service-layer sort. Anything other than DESC means ascending.
func sortPersons(persons []*models.PersonResponse, sortBy, sortOrder string) []*models.PersonResponse {
	order := models.SortAscending
	if sortOrder == string(models.SortDescending) {
		order = models.SortDescending
	}
	return service.SortPersons(persons, sortBy, order)
}
