package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"contactbook/internal/country/models"
	dErrors "contactbook/pkg/domain-errors"
	"contactbook/pkg/httputil"
	request "contactbook/pkg/middleware/request"
)

// Service defines the country operations the HTTP layer depends on.
type Service interface {
	AddCountry(ctx context.Context, req *models.AddCountryRequest) (*models.CountryResponse, error)
	GetAllCountries(ctx context.Context) ([]*models.CountryResponse, error)
	GetCountryByCountryID(ctx context.Context, countryID *uuid.UUID) (*models.CountryResponse, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterReads wires the read-only country routes.
func (h *Handler) RegisterReads(r chi.Router) {
	r.Get("/countries", h.HandleListCountries)
	r.Get("/countries/{id}", h.HandleGetCountry)
}

// RegisterWrites wires the mutating country routes.
func (h *Handler) RegisterWrites(r chi.Router) {
	r.Post("/countries", h.HandleCreateCountry)
}

func (h *Handler) HandleListCountries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	countries, err := h.service.GetAllCountries(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list countries failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, countries)
}

func (h *Handler) HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	countryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid country id"))
		return
	}

	country, err := h.service.GetCountryByCountryID(ctx, &countryID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get country failed", "error", err, "request_id", requestID, "country_id", countryID)
		httputil.WriteError(w, err)
		return
	}
	if country == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "country not found"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, country)
}

func (h *Handler) HandleCreateCountry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := request.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.AddCountryRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	country, err := h.service.AddCountry(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "create country failed", "error", err, "request_id", requestID)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, country)
}
