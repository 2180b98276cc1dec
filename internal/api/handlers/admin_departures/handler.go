package admin_departures

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/departures"
	"github.com/m04kA/SMC-ShuttleService/internal/service/departures/models"
)

const (
	msgInvalidDepartureID = "некорректный ID рейса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные рейса"
	msgDepartureNotFound  = "рейс не найден"
	msgVehicleNotFound    = "автобус не найден"
	msgVehicleInactive    = "автобус выведен из эксплуатации"
)

type Handler struct {
	service DepartureService
	logger  Logger
}

func NewHandler(service DepartureService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// MarkBooked POST /api/v1/admin/departures/mark-booked
func (h *Handler) MarkBooked(w http.ResponseWriter, r *http.Request) {
	const endpoint = "POST /admin/departures/mark-booked"

	var req models.MarkBookedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.MarkBooked(r.Context(), &req)
	if err != nil {
		h.respondError(w, endpoint, 0, err)
		return
	}

	h.logger.Info("%s - Departures marked as booked: end_date=%s, updated=%d", endpoint, result.EndDate, result.Updated)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// AssignVehicle POST /api/v1/admin/departures/assign-vehicle
func (h *Handler) AssignVehicle(w http.ResponseWriter, r *http.Request) {
	const endpoint = "POST /admin/departures/assign-vehicle"

	var req models.AssignVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	departure, err := h.service.AssignVehicle(r.Context(), &req)
	if err != nil {
		h.respondError(w, endpoint, req.DepartureID, err)
		return
	}

	h.logger.Info("%s - Vehicle assigned: departure_id=%d, vehicle_id=%d, capacity=%d",
		endpoint, req.DepartureID, req.VehicleID, departure.Capacity)
	handlers.RespondJSON(w, http.StatusOK, departure)
}

// Update PATCH /api/v1/admin/departures/{departureId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const endpoint = "PATCH /admin/departures/{id}"

	departureID, err := handlers.PathInt64(mux.Vars(r), "departureId")
	if err != nil {
		h.logger.Warn("%s - Invalid departure ID: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidDepartureID)
		return
	}

	var req models.UpdateDepartureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	departure, err := h.service.UpdateDetails(r.Context(), departureID, &req)
	if err != nil {
		h.respondError(w, endpoint, departureID, err)
		return
	}

	h.logger.Info("%s - Departure updated: departure_id=%d, status=%s", endpoint, departureID, departure.Status)
	handlers.RespondJSON(w, http.StatusOK, departure)
}

// Manifest GET /api/v1/admin/departures/{departureId}/manifest
func (h *Handler) Manifest(w http.ResponseWriter, r *http.Request) {
	const endpoint = "GET /admin/departures/{id}/manifest"

	departureID, err := handlers.PathInt64(mux.Vars(r), "departureId")
	if err != nil {
		h.logger.Warn("%s - Invalid departure ID: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidDepartureID)
		return
	}

	manifest, err := h.service.Manifest(r.Context(), departureID)
	if err != nil {
		h.respondError(w, endpoint, departureID, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", manifest.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(manifest.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(manifest.Content); err != nil {
		h.logger.Warn("%s - Failed to write manifest: departure_id=%d, error=%v", endpoint, departureID, err)
		return
	}

	h.logger.Info("%s - Manifest generated: departure_id=%d, bytes=%d", endpoint, departureID, len(manifest.Content))
}

func (h *Handler) respondError(w http.ResponseWriter, endpoint string, departureID int64, err error) {
	switch {
	case errors.Is(err, departures.ErrDepartureNotFound):
		h.logger.Warn("%s - Departure not found: departure_id=%d", endpoint, departureID)
		handlers.RespondNotFound(w, msgDepartureNotFound)

	case errors.Is(err, departures.ErrVehicleNotFound):
		h.logger.Warn("%s - Vehicle not found: departure_id=%d", endpoint, departureID)
		handlers.RespondNotFound(w, msgVehicleNotFound)

	case errors.Is(err, departures.ErrVehicleInactive):
		h.logger.Warn("%s - Vehicle inactive: departure_id=%d", endpoint, departureID)
		handlers.RespondBadRequest(w, msgVehicleInactive)

	case errors.Is(err, departures.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: departure_id=%d, error=%v", endpoint, departureID, err)
		handlers.RespondBadRequest(w, handlers.WithDetail(msgInvalidInput, err, departures.ErrInvalidInput))

	default:
		h.logger.Error("%s - Failed: departure_id=%d, error=%v", endpoint, departureID, err)
		handlers.RespondInternalError(w)
	}
}
