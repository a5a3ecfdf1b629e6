package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/location"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LocationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LocationHandlerImpl struct {
	locationService location.LocationService
}

func NewLocationHandler(locationService location.LocationService) LocationHandler {
	return &LocationHandlerImpl{locationService: locationService}
}

// Create implements LocationHandler.
func (h *LocationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req location.CreateLocationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create location decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.locationService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create location service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Location created successfully", created)
}

// GetByID implements LocationHandler.
func (h *LocationHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	loc, err := h.locationService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, loc)
}

// List implements LocationHandler.
func (h *LocationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	locations, err := h.locationService.List(r.Context())
	if err != nil {
		slog.Error("List locations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, locations)
}
