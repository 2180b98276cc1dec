package generate_departures

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/pkg/ptr"
)

// Размер пачки для вставки рейсов одним запросом
const batchSize = 500

// UseCase use case генерации рейсов по недельным расписаниям
type UseCase struct {
	scheduleRepo    ScheduleRepository
	departureRepo   DepartureRepository
	cache           AvailabilityCache
	metrics         Metrics
	defaultCapacity int
	windowDays      int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	departureRepo DepartureRepository,
	cache AvailabilityCache,
	metrics Metrics,
	defaultCapacity int,
	windowDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:    scheduleRepo,
		departureRepo:   departureRepo,
		cache:           cache,
		metrics:         metrics,
		defaultCapacity: defaultCapacity,
		windowDays:      windowDays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ExecuteRollingWindow генерирует рейсы на настроенное окно, начиная с сегодняшнего дня
func (uc *UseCase) ExecuteRollingWindow(ctx context.Context, capacity *int) (*Response, error) {
	start := domain.TruncateToDay(uc.timeProvider.Now())
	days := uc.windowDays
	if days < 1 {
		days = 1
	}

	return uc.Execute(ctx, &Request{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days-1),
		Capacity:  capacity,
	})
}

// Execute создает недостающие рейсы для всех активных расписаний за период.
// Повторный запуск с тем же периодом ничего не создает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateDepartures: validation failed: %v", err)
		return nil, err
	}

	start := domain.TruncateToDay(req.StartDate)
	end := domain.TruncateToDay(req.EndDate)

	uc.logger.Info("GenerateDepartures: %s..%s", start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	resp := &Response{
		StartDate: start,
		EndDate:   end,
		Problems:  make([]Problem, 0),
	}

	// 2. Активные расписания вместе с маршрутом и автобусом
	schedules, err := uc.scheduleRepo.List(ctx, domain.ScheduleFilter{ActiveOnly: true})
	if err != nil {
		uc.logger.Error("GenerateDepartures: failed to list schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedules: %w", ErrInternal, err)
	}

	// 3. Некорректные расписания пропускаются и попадают в отчет
	valid := make([]*domain.Schedule, 0, len(schedules))
	ids := make([]int64, 0, len(schedules))
	for _, s := range schedules {
		if reason := validateSchedule(s); reason != "" {
			uc.logger.Warn("GenerateDepartures: skipping schedule id=%d: %s", s.ID, reason)
			resp.Problems = append(resp.Problems, Problem{ScheduleID: ptr.Ptr(s.ID), Reason: reason})
			continue
		}
		valid = append(valid, s)
		ids = append(ids, s.ID)
	}

	// 4. Уже существующие пары (расписание, дата) за период
	existing, err := uc.departureRepo.ExistingKeys(ctx, ids, start, end)
	if err != nil {
		uc.logger.Error("GenerateDepartures: failed to load existing departures: %v", err)
		return nil, fmt.Errorf("%w: failed to load existing departures: %w", ErrInternal, err)
	}

	// 5. Раскладываем расписания по датам периода
	pending := make([]*domain.Departure, 0)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		for _, s := range valid {
			if !s.AppliesOn(date) {
				continue
			}

			d := domain.NewScheduledDeparture(s.ID, date, resolveCapacity(req.Capacity, s, uc.defaultCapacity), s.VehicleID)
			if _, ok := existing[d.Key()]; ok {
				resp.SkippedExisting++
				continue
			}
			pending = append(pending, d)
		}
	}

	// 6. Вставка пачками. Ошибка пачки не останавливает остальные
	for i := 0; i < len(pending); i += batchSize {
		chunk := pending[i:min(i+batchSize, len(pending))]

		created, err := uc.departureRepo.InsertBatch(ctx, chunk)
		if err != nil {
			uc.logger.Error("GenerateDepartures: failed to insert batch of %d departures starting %s: %v",
				len(chunk), chunk[0].DepartureDate.Format(domain.DateFormat), err)
			resp.Failed += len(chunk)
			resp.Problems = append(resp.Problems, Problem{
				Reason: fmt.Sprintf("batch of %d departures starting %s failed", len(chunk), chunk[0].DepartureDate.Format(domain.DateFormat)),
			})
			continue
		}

		// Строки, пропущенные ON CONFLICT, создал параллельный запуск
		resp.Created += int(created)
		resp.SkippedExisting += len(chunk) - int(created)
	}

	uc.metrics.AddDeparturesGenerated(resp.Created)
	if resp.Created > 0 {
		if err := uc.cache.InvalidateDepartures(ctx); err != nil {
			uc.logger.Warn("GenerateDepartures: failed to invalidate availability cache: %v", err)
		}
	}

	uc.logger.Info("GenerateDepartures: created=%d, skipped=%d, failed=%d, problems=%d",
		resp.Created, resp.SkippedExisting, resp.Failed, len(resp.Problems))

	return resp, nil
}
