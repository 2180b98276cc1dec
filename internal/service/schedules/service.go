package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ShuttleService/internal/service/schedules/models"
	"github.com/m04kA/SMC-ShuttleService/pkg/types"
)

// Service сервис управления расписаниями
type Service struct {
	scheduleRepo    ScheduleRepository
	defaultCapacity int
	logger          Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, defaultCapacity int, logger Logger) *Service {
	return &Service{
		scheduleRepo:    scheduleRepo,
		defaultCapacity: defaultCapacity,
		logger:          logger,
	}
}

// Create создает расписание. Существующие рейсы не затрагиваются,
// новые появятся при следующей генерации
func (s *Service) Create(ctx context.Context, req *models.ScheduleRequest) (*models.ScheduleResponse, error) {
	schedule, err := s.toDomain(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return nil, s.mapError("Create", 0, err)
	}

	s.logger.Info("Create: schedule id=%d created for route id=%d", created.ID, created.RouteID)
	return models.FromDomainSchedule(created), nil
}

// Update изменяет расписание. Уже созданные рейсы не пересчитываются
func (s *Service) Update(ctx context.Context, id int64, req *models.ScheduleRequest) (*models.ScheduleResponse, error) {
	schedule, err := s.toDomain(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for schedule id=%d: %v", id, err)
		return nil, err
	}
	schedule.ID = id

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, s.mapError("Update", id, err)
	}

	updated, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	s.logger.Info("Update: schedule id=%d updated", id)
	return models.FromDomainSchedule(updated), nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
		s.logger.Warn("%s: schedule id=%d not found", op, id)
		return ErrScheduleNotFound
	case errors.Is(err, scheduleRepo.ErrReferenceNotFound):
		s.logger.Warn("%s: route or vehicle of schedule id=%d not found", op, id)
		return ErrReferenceNotFound
	default:
		s.logger.Error("%s: repository error for schedule id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func (s *Service) toDomain(req *models.ScheduleRequest) (*domain.Schedule, error) {
	if req.RouteID <= 0 {
		return nil, fmt.Errorf("%w: routeId is required", ErrInvalidInput)
	}

	// every_day хранится вместе с корректным day_of_week, чтобы не было "магического" нуля
	day := req.DayOfWeek
	if req.EveryDay && day == 0 {
		day = 1
	}
	if !domain.IsValidDayOfWeek(day) {
		return nil, fmt.Errorf("%w: dayOfWeek must be between 1 (Monday) and 7 (Sunday)", ErrInvalidInput)
	}

	departureTime, err := types.NewTimeStringFromString(req.DepartureTime)
	if err != nil {
		return nil, fmt.Errorf("%w: departureTime must be in HH:MM format", ErrInvalidInput)
	}

	capacity := s.defaultCapacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}
	if capacity < domain.MinCapacity || capacity > domain.MaxCapacity {
		return nil, fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}

	if req.VehicleID != nil && *req.VehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicleId must be positive", ErrInvalidInput)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return &domain.Schedule{
		RouteID:       req.RouteID,
		DayOfWeek:     day,
		EveryDay:      req.EveryDay,
		DepartureTime: departureTime,
		Capacity:      capacity,
		VehicleID:     req.VehicleID,
		IsActive:      active,
	}, nil
}
