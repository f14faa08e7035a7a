package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"contactbook/internal/person/models"
	dErrors "contactbook/pkg/domain-errors"
	"contactbook/pkg/httputil"
	request "contactbook/pkg/middleware/request"
)

// Service defines the person operations the HTTP layer depends on.
// Returns projections, not HTTP response DTOs.
type Service interface {
	AddPerson(ctx context.Context, req *models.AddPersonRequest) (*models.PersonResponse, error)
	GetFilteredPersons(ctx context.Context, searchBy, searchString string) ([]*models.PersonResponse, error)
	GetPersonByPersonID(ctx context.Context, personID *uuid.UUID) (*models.PersonResponse, error)
	UpdatePerson(ctx context.Context, req *models.UpdatePersonRequest) (*models.PersonResponse, error)
	DeletePerson(ctx context.Context, personID *uuid.UUID) (bool, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterReads wires the read-only person routes.
func (h *Handler) RegisterReads(r chi.Router) {
	r.Get("/persons", h.HandleListPersons)
	r.Get("/persons/{id}", h.HandleGetPerson)
}

// RegisterWrites wires the mutating person routes. Kept separate so the
// router can wrap them with the admin-token and feature-disable middleware.
func (h *Handler) RegisterWrites(r chi.Router) {
	r.Post("/persons", h.HandleCreatePerson)
	r.Put("/persons/{id}", h.HandleUpdatePerson)
	r.Delete("/persons/{id}", h.HandleDeletePerson)
}

// HandleListPersons lists persons, filtered then sorted by the query
// parameters searchBy, searchString, sortBy, sortOrder.
func (h *Handler) HandleListPersons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)
	q := r.URL.Query()

	persons, err := h.service.GetFilteredPersons(ctx, q.Get("searchBy"), q.Get("searchString"))
	if err != nil {
		h.logger.ErrorContext(ctx, "list persons failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	sortBy := q.Get("sortBy")
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	persons = sortPersons(persons, sortBy, q.Get("sortOrder"))

	httputil.WriteJSON(w, http.StatusOK, persons)
}

// HandleGetPerson returns one person, 404 when missing.
func (h *Handler) HandleGetPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	personID, ok := parseID(w, r)
	if !ok {
		return
	}

	person, err := h.service.GetPersonByPersonID(ctx, &personID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get person failed", "error", err, "request_id", requestID, "person_id", personID)
		httputil.WriteError(w, err)
		return
	}
	if person == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "person not found"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, person)
}

// HandleCreatePerson creates a person.
func (h *Handler) HandleCreatePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.AddPersonRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	person, err := h.service.AddPerson(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "create person failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, person)
}

// HandleUpdatePerson overwrites a person's mutable fields. The path id wins
// over any id in the body.
func (h *Handler) HandleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	personID, ok := parseID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeJSON[models.UpdatePersonRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	req.PersonID = personID
	if err := httputil.PrepareRequest(req); err != nil {
		httputil.WriteError(w, err)
		return
	}

	person, err := h.service.UpdatePerson(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "update person failed", "error", err, "request_id", requestID, "person_id", personID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, person)
}

// HandleDeletePerson deletes a person, 404 when missing.
func (h *Handler) HandleDeletePerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	personID, ok := parseID(w, r)
	if !ok {
		return
	}

	deleted, err := h.service.DeletePerson(ctx, &personID)
	if err != nil {
		h.logger.ErrorContext(ctx, "delete person failed", "error", err, "request_id", requestID, "person_id", personID)
		httputil.WriteError(w, err)
		return
	}
	if !deleted {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "person not found"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	personID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid person id"))
		return uuid.Nil, false
	}
	return personID, true
}
