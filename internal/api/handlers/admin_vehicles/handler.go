package admin_vehicles

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/vehicles"
	"github.com/m04kA/SMC-ShuttleService/internal/service/vehicles/models"
)

const (
	msgInvalidVehicleID   = "некорректный ID автобуса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные автобуса"
	msgVehicleNotFound    = "автобус не найден"
	msgVehicleInUse       = "автобус назначен на расписания или рейсы, вместо удаления деактивируйте его"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/vehicles
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const endpoint = "POST /admin/vehicles"

	var req models.VehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, endpoint, 0, err)
		return
	}

	h.logger.Info("%s - Vehicle created: vehicle_id=%d, capacity=%d", endpoint, vehicle.ID, vehicle.Capacity)
	handlers.RespondJSON(w, http.StatusCreated, vehicle)
}

// Update PUT /api/v1/admin/vehicles/{vehicleId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const endpoint = "PUT /admin/vehicles/{id}"

	vehicleID, err := handlers.PathInt64(mux.Vars(r), "vehicleId")
	if err != nil {
		h.logger.Warn("%s - Invalid vehicle ID: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	var req models.VehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	vehicle, err := h.service.Update(r.Context(), vehicleID, &req)
	if err != nil {
		h.respondError(w, endpoint, vehicleID, err)
		return
	}

	h.logger.Info("%s - Vehicle updated: vehicle_id=%d", endpoint, vehicleID)
	handlers.RespondJSON(w, http.StatusOK, vehicle)
}

// Delete DELETE /api/v1/admin/vehicles/{vehicleId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const endpoint = "DELETE /admin/vehicles/{id}"

	vehicleID, err := handlers.PathInt64(mux.Vars(r), "vehicleId")
	if err != nil {
		h.logger.Warn("%s - Invalid vehicle ID: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidVehicleID)
		return
	}

	if err := h.service.Delete(r.Context(), vehicleID); err != nil {
		h.respondError(w, endpoint, vehicleID, err)
		return
	}

	h.logger.Info("%s - Vehicle deleted: vehicle_id=%d", endpoint, vehicleID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, endpoint string, vehicleID int64, err error) {
	switch {
	case errors.Is(err, vehicles.ErrVehicleNotFound):
		h.logger.Warn("%s - Vehicle not found: vehicle_id=%d", endpoint, vehicleID)
		handlers.RespondNotFound(w, msgVehicleNotFound)

	case errors.Is(err, vehicles.ErrVehicleInUse):
		h.logger.Warn("%s - Vehicle in use: vehicle_id=%d", endpoint, vehicleID)
		handlers.RespondBadRequest(w, msgVehicleInUse)

	case errors.Is(err, vehicles.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: vehicle_id=%d, error=%v", endpoint, vehicleID, err)
		handlers.RespondBadRequest(w, handlers.WithDetail(msgInvalidInput, err, vehicles.ErrInvalidInput))

	default:
		h.logger.Error("%s - Failed: vehicle_id=%d, error=%v", endpoint, vehicleID, err)
		handlers.RespondInternalError(w)
	}
}
