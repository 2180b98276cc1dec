package departures

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	departureRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/departure"
	vehicleRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-ShuttleService/internal/service/departures/models"
	"github.com/m04kA/SMC-ShuttleService/pkg/ptr"
)

// Service сервис администрирования рейсов
type Service struct {
	departureRepo DepartureRepository
	vehicleRepo   VehicleRepository
	bookingRepo   BookingRepository
	cache         AvailabilityCache
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса рейсов
func NewService(
	departureRepo DepartureRepository,
	vehicleRepo VehicleRepository,
	bookingRepo BookingRepository,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		departureRepo: departureRepo,
		vehicleRepo:   vehicleRepo,
		bookingRepo:   bookingRepo,
		cache:         cache,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// MarkBooked закрывает продажи на рейсах с сегодняшнего дня по endDate включительно.
// Свободные места переводятся в удержанные, рейсы остаются в статусе SCHEDULED
func (s *Service) MarkBooked(ctx context.Context, req *models.MarkBookedRequest) (*models.MarkBookedResponse, error) {
	endDate, err := models.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	today := domain.TruncateToDay(s.timeProvider.Now())
	if endDate.Before(today) {
		return nil, fmt.Errorf("%w: endDate must not be in the past", ErrInvalidInput)
	}
	if endDate.Sub(today).Hours()/24 >= domain.MaxGenerateRangeDays {
		return nil, fmt.Errorf("%w: range must not exceed %d days", ErrInvalidInput, domain.MaxGenerateRangeDays)
	}
	for _, id := range req.ScheduleIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: scheduleIds must be positive", ErrInvalidInput)
		}
	}

	s.logger.Info("MarkBooked: closing sales %s..%s, schedules=%v",
		today.Format(domain.DateFormat), req.EndDate, req.ScheduleIDs)

	// Один UPDATE в транзакции: либо закрываются все рейсы периода, либо ни один
	var updated int64
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		n, err := s.departureRepo.MarkBooked(txCtx, today, endDate, req.ScheduleIDs)
		if err != nil {
			return err
		}
		updated = n
		return nil
	})
	if err != nil {
		s.logger.Error("MarkBooked: repository error for %s..%s: %v",
			today.Format(domain.DateFormat), req.EndDate, err)
		return nil, fmt.Errorf("%w: MarkBooked - repository error: %v", ErrInternal, err)
	}

	s.invalidateCache(ctx, "MarkBooked")

	s.logger.Info("MarkBooked: %d departures marked as booked", updated)
	return &models.MarkBookedResponse{
		StartDate: today.Format(domain.DateFormat),
		EndDate:   endDate.Format(domain.DateFormat),
		Updated:   updated,
	}, nil
}

// AssignVehicle назначает автобус на рейс и копирует его вместимость.
// Уменьшение вместимости ниже занятых мест не блокируется, но логируется как аномалия
func (s *Service) AssignVehicle(ctx context.Context, req *models.AssignVehicleRequest) (*models.DepartureResponse, error) {
	if req.DepartureID <= 0 || req.VehicleID <= 0 {
		return nil, fmt.Errorf("%w: departureId and vehicleId are required", ErrInvalidInput)
	}

	s.logger.Info("AssignVehicle: assigning vehicle id=%d to departure id=%d", req.VehicleID, req.DepartureID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		vehicle, err := s.vehicleRepo.GetByID(txCtx, req.VehicleID)
		if err != nil {
			return err
		}
		if !vehicle.IsActive {
			return ErrVehicleInactive
		}

		if err := s.departureRepo.AssignVehicle(txCtx, req.DepartureID, vehicle.ID, vehicle.Capacity); err != nil {
			return err
		}

		refreshed, err := s.departureRepo.RefreshBookedSeats(txCtx, req.DepartureID)
		if err != nil {
			return err
		}
		if refreshed.SeatsTaken > refreshed.Capacity {
			s.logger.Warn("AssignVehicle: departure id=%d is overbooked after assignment: capacity=%d, taken=%d",
				refreshed.ID, refreshed.Capacity, refreshed.SeatsTaken)
		}
		return nil
	})
	if err != nil {
		return nil, s.mapError("AssignVehicle", req.DepartureID, err)
	}

	s.invalidateCache(ctx, "AssignVehicle")

	return s.get(ctx, "AssignVehicle", req.DepartureID)
}

// UpdateDetails меняет статус рейса и/или заметки водителя
func (s *Service) UpdateDetails(ctx context.Context, id int64, req *models.UpdateDepartureRequest) (*models.DepartureResponse, error) {
	if req.Status == nil && req.DriverNotes == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var status *domain.DepartureStatus
	if req.Status != nil {
		st := domain.DepartureStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		status = ptr.Ptr(st)
	}

	var notes *string
	if req.DriverNotes != nil {
		n := strings.TrimSpace(*req.DriverNotes)
		if len(n) > domain.MaxDriverNotesLength {
			return nil, fmt.Errorf("%w: driverNotes must not exceed %d characters", ErrInvalidInput, domain.MaxDriverNotesLength)
		}
		notes = ptr.Ptr(n)
	}

	if err := s.departureRepo.UpdateDetails(ctx, id, status, notes); err != nil {
		return nil, s.mapError("UpdateDetails", id, err)
	}

	if status != nil {
		s.logger.Info("UpdateDetails: departure id=%d status set to %s", id, *status)
		s.invalidateCache(ctx, "UpdateDetails")
	}

	return s.get(ctx, "UpdateDetails", id)
}

// Manifest формирует PDF со списком пассажиров подтвержденных и оплаченных бронирований
func (s *Service) Manifest(ctx context.Context, id int64) (*models.Manifest, error) {
	departure, err := s.departureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("Manifest", id, err)
	}

	bookings, err := s.bookingRepo.ListByDeparture(ctx, id, domain.SeatConsumingStatuses)
	if err != nil {
		s.logger.Error("Manifest: failed to list bookings of departure id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Manifest - list bookings: %v", ErrInternal, err)
	}

	content, err := renderManifest(departure, bookings)
	if err != nil {
		s.logger.Error("Manifest: failed to render pdf for departure id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Manifest - render pdf: %v", ErrInternal, err)
	}

	s.logger.Info("Manifest: departure id=%d, %d bookings", id, len(bookings))
	return &models.Manifest{
		FileName: fmt.Sprintf("manifest-%d-%s.pdf", departure.ID, departure.DepartureDate.Format(domain.DateFormat)),
		Content:  content,
	}, nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*models.DepartureResponse, error) {
	departure, err := s.departureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError(op, id, err)
	}
	return models.FromDomainDeparture(departure), nil
}

func (s *Service) invalidateCache(ctx context.Context, op string) {
	if err := s.cache.InvalidateDepartures(ctx); err != nil {
		s.logger.Warn("%s: failed to invalidate availability cache: %v", op, err)
	}
}

func (s *Service) mapError(op string, departureID int64, err error) error {
	switch {
	case errors.Is(err, departureRepo.ErrDepartureNotFound):
		s.logger.Warn("%s: departure id=%d not found", op, departureID)
		return ErrDepartureNotFound
	case errors.Is(err, vehicleRepo.ErrVehicleNotFound):
		s.logger.Warn("%s: vehicle for departure id=%d not found", op, departureID)
		return ErrVehicleNotFound
	case errors.Is(err, ErrVehicleInactive):
		s.logger.Warn("%s: vehicle for departure id=%d is inactive", op, departureID)
		return err
	default:
		s.logger.Error("%s: repository error for departure id=%d: %v", op, departureID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
