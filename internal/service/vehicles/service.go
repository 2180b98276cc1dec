package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-ShuttleService/internal/service/vehicles/models"
)

// Service сервис управления автобусами
type Service struct {
	vehicleRepo VehicleRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса автобусов
func NewService(vehicleRepo VehicleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает автобус
func (s *Service) Create(ctx context.Context, req *models.VehicleRequest) (*models.VehicleResponse, error) {
	vehicle, err := toDomain(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error("Create: repository error for vehicle %q: %v", vehicle.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: vehicle id=%d created, capacity=%d", created.ID, created.Capacity)
	return models.FromDomainVehicle(created), nil
}

// Update изменяет автобус. Вместимость уже назначенных рейсов не меняется
func (s *Service) Update(ctx context.Context, id int64, req *models.VehicleRequest) (*models.VehicleResponse, error) {
	vehicle, err := toDomain(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for vehicle id=%d: %v", id, err)
		return nil, err
	}
	vehicle.ID = id

	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, s.mapError("Update", id, err)
	}

	updated, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("Update", id, err)
	}

	s.logger.Info("Update: vehicle id=%d updated", id)
	return models.FromDomainVehicle(updated), nil
}

// Delete удаляет автобус, если на него никто не ссылается.
// Назначенный автобус нужно деактивировать, а не удалять
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		refs, err := s.vehicleRepo.CountReferences(txCtx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			s.logger.Warn("Delete: vehicle id=%d is referenced %d times", id, refs)
			return ErrVehicleInUse
		}

		return s.vehicleRepo.Delete(txCtx, id)
	})
	if err != nil {
		return s.mapError("Delete", id, err)
	}

	s.logger.Info("Delete: vehicle id=%d deleted", id)
	return nil
}

func (s *Service) mapError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, vehicleRepo.ErrVehicleNotFound):
		s.logger.Warn("%s: vehicle id=%d not found", op, id)
		return ErrVehicleNotFound
	case errors.Is(err, ErrVehicleInUse), errors.Is(err, vehicleRepo.ErrVehicleInUse):
		return ErrVehicleInUse
	default:
		s.logger.Error("%s: repository error for vehicle id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func toDomain(req *models.VehicleRequest) (*domain.Vehicle, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxRouteNameLength {
		return nil, fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxRouteNameLength)
	}
	if req.Capacity < domain.MinCapacity || req.Capacity > domain.MaxCapacity {
		return nil, fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinCapacity, domain.MaxCapacity)
	}

	multiplier := 1.0
	if req.PriceMultiplier != nil {
		multiplier = *req.PriceMultiplier
	}
	if multiplier < domain.MinPriceMultiplier || multiplier > domain.MaxPriceMultiplier {
		return nil, fmt.Errorf("%w: priceMultiplier must be between %.1f and %.1f",
			ErrInvalidInput, domain.MinPriceMultiplier, domain.MaxPriceMultiplier)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return &domain.Vehicle{
		Name:            name,
		Capacity:        req.Capacity,
		PriceMultiplier: multiplier,
		IsActive:        active,
	}, nil
}
