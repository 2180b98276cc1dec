package admin_routes

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/routes"
	"github.com/m04kA/SMC-ShuttleService/internal/service/routes/models"
)

const (
	msgInvalidRouteID     = "некорректный ID маршрута"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные маршрута"
	msgRouteNotFound      = "маршрут не найден"
	msgRouteNameTaken     = "маршрут с таким названием уже существует"
)

type Handler struct {
	service RouteService
	logger  Logger
}

func NewHandler(service RouteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/routes
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const endpoint = "POST /admin/routes"

	var req models.RouteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	route, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, endpoint, 0, err)
		return
	}

	h.logger.Info("%s - Route created: route_id=%d, name=%s", endpoint, route.ID, route.Name)
	handlers.RespondJSON(w, http.StatusCreated, route)
}

// Update PUT /api/v1/admin/routes/{routeId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const endpoint = "PUT /admin/routes/{id}"

	routeID, err := handlers.PathInt64(mux.Vars(r), "routeId")
	if err != nil {
		h.logger.Warn("%s - Invalid route ID: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRouteID)
		return
	}

	var req models.RouteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", endpoint, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	route, err := h.service.Update(r.Context(), routeID, &req)
	if err != nil {
		h.respondError(w, endpoint, routeID, err)
		return
	}

	h.logger.Info("%s - Route updated: route_id=%d", endpoint, routeID)
	handlers.RespondJSON(w, http.StatusOK, route)
}

func (h *Handler) respondError(w http.ResponseWriter, endpoint string, routeID int64, err error) {
	switch {
	case errors.Is(err, routes.ErrRouteNotFound):
		h.logger.Warn("%s - Route not found: route_id=%d", endpoint, routeID)
		handlers.RespondNotFound(w, msgRouteNotFound)

	case errors.Is(err, routes.ErrRouteNameTaken):
		h.logger.Warn("%s - Route name taken: route_id=%d", endpoint, routeID)
		handlers.RespondBadRequest(w, msgRouteNameTaken)

	case errors.Is(err, routes.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: route_id=%d, error=%v", endpoint, routeID, err)
		handlers.RespondBadRequest(w, handlers.WithDetail(msgInvalidInput, err, routes.ErrInvalidInput))

	default:
		h.logger.Error("%s - Failed: route_id=%d, error=%v", endpoint, routeID, err)
		handlers.RespondInternalError(w)
	}
}
