package routes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	routeRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/route"
	"github.com/m04kA/SMC-ShuttleService/internal/service/routes/models"
)

// Service сервис управления маршрутами
type Service struct {
	routeRepo RouteRepository
	cache     AvailabilityCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса маршрутов
func NewService(routeRepo RouteRepository, cache AvailabilityCache, logger Logger) *Service {
	return &Service{
		routeRepo: routeRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Create создает маршрут. Уникальность имени проверяется до записи и подстраховывается индексом
func (s *Service) Create(ctx context.Context, req *models.RouteRequest) (*models.RouteResponse, error) {
	route, err := toDomain(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkName(ctx, "Create", route.Name, nil); err != nil {
		return nil, err
	}

	created, err := s.routeRepo.Create(ctx, route)
	if err != nil {
		return nil, s.mapError("Create", 0, err)
	}

	s.logger.Info("Create: route id=%d %q created", created.ID, created.Name)
	return models.FromDomainRoute(created), nil
}

// Update изменяет маршрут
func (s *Service) Update(ctx context.Context, id int64, req *models.RouteRequest) (*models.RouteResponse, error) {
	route, err := toDomain(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for route id=%d: %v", id, err)
		return nil, err
	}
	route.ID = id

	if err := s.checkName(ctx, "Update", route.Name, &id); err != nil {
		return nil, err
	}

	if err := s.routeRepo.Update(ctx, route); err != nil {
		return nil, s.mapError("Update", id, err)
	}

	updated, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	if err := s.cache.InvalidateDepartures(ctx); err != nil {
		s.logger.Warn("Update: failed to invalidate availability cache: %v", err)
	}

	s.logger.Info("Update: route id=%d updated", id)
	return models.FromDomainRoute(updated), nil
}

func (s *Service) checkName(ctx context.Context, op, name string, excludeID *int64) error {
	exists, err := s.routeRepo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		s.logger.Error("%s: failed to check route name %q: %v", op, name, err)
		return fmt.Errorf("%w: %s - check name: %v", ErrInternal, op, err)
	}
	if exists {
		s.logger.Warn("%s: route name %q is taken", op, name)
		return ErrRouteNameTaken
	}
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, routeRepo.ErrRouteNotFound):
		s.logger.Warn("%s: route id=%d not found", op, id)
		return ErrRouteNotFound
	case errors.Is(err, routeRepo.ErrRouteNameTaken):
		s.logger.Warn("%s: route name is taken (unique index)", op)
		return ErrRouteNameTaken
	default:
		s.logger.Error("%s: repository error for route id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func toDomain(req *models.RouteRequest) (*domain.Route, error) {
	route := &domain.Route{
		Name:            strings.TrimSpace(req.Name),
		Origin:          strings.TrimSpace(req.Origin),
		Destination:     strings.TrimSpace(req.Destination),
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}
	if req.IsActive != nil {
		route.IsActive = *req.IsActive
	}

	switch {
	case route.Name == "":
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	case len(route.Name) > domain.MaxRouteNameLength:
		return nil, fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxRouteNameLength)
	case route.Origin == "" || route.Destination == "":
		return nil, fmt.Errorf("%w: origin and destination are required", ErrInvalidInput)
	case len(route.Origin) > domain.MaxRouteNameLength || len(route.Destination) > domain.MaxRouteNameLength:
		return nil, fmt.Errorf("%w: origin and destination must not exceed %d characters", ErrInvalidInput, domain.MaxRouteNameLength)
	case route.DurationMinutes <= 0:
		return nil, fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	return route, nil
}
