package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/booking"
	departureRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/departure"
	"github.com/m04kA/SMC-ShuttleService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ShuttleService/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo   BookingRepository
	departureRepo DepartureRepository
	cache         AvailabilityCache
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	departureRepo DepartureRepository,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		departureRepo: departureRepo,
		cache:         cache,
		txManager:     txManager,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Бронирование зарегистрированного пользователя видно только ему самому
func (s *Service) GetByID(ctx context.Context, id int64, userID *int64) (*models.BookingResponse, error) {
	booking, err := s.load(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := checkOwner(booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied to booking id=%d", id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование и освобождает места
// Отмена и пересчет мест рейса выполняются в одной транзакции
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if req.CancellationReason != nil {
		reason := strings.TrimSpace(*req.CancellationReason)
		if len(reason) > domain.MaxCancellationReasonLength {
			return nil, fmt.Errorf("%w: cancellationReason is too long", ErrInvalidInput)
		}
		if reason == "" {
			req.CancellationReason = nil
		} else {
			req.CancellationReason = ptr.Ptr(reason)
		}
	}

	var cancelled *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Читаем бронирование с блокировкой строки
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return err
		}

		if err := checkOwner(booking, req.UserID); err != nil {
			return err
		}

		// 2. Проверяем, можно ли отменить бронирование
		if !booking.CanBeCancelled() {
			return ErrCannotCancel
		}

		// 3. Отменяем
		if err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason); err != nil {
			return err
		}

		// 4. Пересчитываем кэш занятых мест рейса из агрегата
		if booking.ConsumesSeats() {
			if _, err := s.departureRepo.RefreshBookedSeats(txCtx, booking.DepartureID); err != nil {
				return err
			}
		}

		booking.Status = domain.StatusCancelled
		booking.CancellationReason = req.CancellationReason
		cancelled = booking
		return nil
	})
	if err != nil {
		return nil, s.mapError("Cancel", bookingID, err)
	}

	s.invalidateCache(ctx, "Cancel")

	s.logger.Info("Cancel: successfully cancelled booking id=%d, departure id=%d, released %d seats",
		bookingID, cancelled.DepartureID, cancelled.PassengerCount)

	// Перечитываем, чтобы вернуть cancelled_at из базы
	booking, err := s.load(ctx, "Cancel", bookingID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// MarkPaid отмечает бронирование оплаченным
// Если бронь еще не занимала места (PENDING), оплата не должна переполнить рейс
func (s *Service) MarkPaid(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("MarkPaid: marking booking id=%d as paid", bookingID)

	var seatsChanged bool
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeMarkedPaid() {
			return ErrCannotMarkPaid
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusPaid); err != nil {
			return err
		}

		if booking.ConsumesSeats() {
			return nil
		}

		departure, err := s.departureRepo.RefreshBookedSeats(txCtx, booking.DepartureID)
		if err != nil {
			return err
		}
		if departure.SeatsTaken > departure.Capacity {
			return ErrSoldOut
		}
		seatsChanged = true
		return nil
	})
	if err != nil {
		return nil, s.mapError("MarkPaid", bookingID, err)
	}

	if seatsChanged {
		s.invalidateCache(ctx, "MarkPaid")
	}

	s.logger.Info("MarkPaid: booking id=%d is paid", bookingID)

	booking, err := s.load(ctx, "MarkPaid", bookingID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

func (s *Service) load(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

func (s *Service) invalidateCache(ctx context.Context, op string) {
	if err := s.cache.InvalidateDepartures(ctx); err != nil {
		s.logger.Warn("%s: failed to invalidate availability cache: %v", op, err)
	}
}

func (s *Service) mapError(op string, bookingID int64, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%d not found", op, bookingID)
		return ErrBookingNotFound
	case errors.Is(err, ErrAccessDenied),
		errors.Is(err, ErrCannotCancel),
		errors.Is(err, ErrCannotMarkPaid),
		errors.Is(err, ErrSoldOut):
		s.logger.Warn("%s: booking id=%d rejected: %v", op, bookingID, err)
		return err
	case errors.Is(err, departureRepo.ErrDepartureNotFound):
		s.logger.Error("%s: departure of booking id=%d is missing", op, bookingID)
		return fmt.Errorf("%w: %s - departure missing: %v", ErrInternal, op, err)
	default:
		s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// checkOwner проверяет доступ: бронь пользователя доступна только ему, гостевая - по ID
func checkOwner(booking *domain.Booking, userID *int64) error {
	if booking.UserID == nil {
		return nil
	}
	if userID == nil || *userID != *booking.UserID {
		return ErrAccessDenied
	}
	return nil
}
