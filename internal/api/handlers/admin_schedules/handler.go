package admin_schedules

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/schedules"
	"github.com/m04kA/SMC-ShuttleService/internal/service/schedules/models"
)

const (
	msgInvalidScheduleID  = "некорректный ID расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные расписания"
	msgScheduleNotFound   = "расписание не найдено"
	msgReferenceNotFound  = "маршрут или автобус расписания не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/schedules
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const endpoint = "POST /admin/schedules"

	var req models.ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, endpoint, 0, err)
		return
	}

	h.logger.Info("%s - Schedule created: schedule_id=%d, route_id=%d", endpoint, schedule.ID, schedule.RouteID)
	handlers.RespondJSON(w, http.StatusCreated, schedule)
}

// Update PUT /api/v1/admin/schedules/{scheduleId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const endpoint = "PUT /admin/schedules/{id}"

	scheduleID, err := handlers.PathInt64(mux.Vars(r), "scheduleId")
	if err != nil {
		h.logger.Warn("%s - Invalid schedule ID: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req models.ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	schedule, err := h.service.Update(r.Context(), scheduleID, &req)
	if err != nil {
		h.respondError(w, endpoint, scheduleID, err)
		return
	}

	h.logger.Info("%s - Schedule updated: schedule_id=%d", endpoint, scheduleID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}

func (h *Handler) respondError(w http.ResponseWriter, endpoint string, scheduleID int64, err error) {
	switch {
	case errors.Is(err, schedules.ErrScheduleNotFound):
		h.logger.Warn("%s - Schedule not found: schedule_id=%d", endpoint, scheduleID)
		handlers.RespondNotFound(w, msgScheduleNotFound)

	case errors.Is(err, schedules.ErrReferenceNotFound):
		h.logger.Warn("%s - Route or vehicle not found: schedule_id=%d", endpoint, scheduleID)
		handlers.RespondBadRequest(w, msgReferenceNotFound)

	case errors.Is(err, schedules.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: schedule_id=%d, error=%v", endpoint, scheduleID, err)
		handlers.RespondBadRequest(w, handlers.WithDetail(msgInvalidInput, err, schedules.ErrInvalidInput))

	default:
		h.logger.Error("%s - Failed: schedule_id=%d, error=%v", endpoint, scheduleID, err)
		handlers.RespondInternalError(w)
	}
}
