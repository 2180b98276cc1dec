package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	adminDeparturesHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/admin_departures"
	adminLoginHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/admin_login"
	adminPricingHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/admin_pricing"
	adminRoutesHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/admin_routes"
	adminSchedulesHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/admin_schedules"
	adminVehiclesHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/admin_vehicles"
	cancelBookingHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/create_booking"
	generateDeparturesHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/generate_departures"
	getBookingHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_booking"
	getCapacityHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_capacity"
	getDeparturesHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_departures"
	getPricingHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_pricing"
	getRoutesHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_routes"
	getSchedulesHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/get_schedules"
	markBookingPaidHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/mark_booking_paid"
	updateFeesHandler "github.com/m04kA/SMC-ShuttleService/internal/api/handlers/update_fees"
	"github.com/m04kA/SMC-ShuttleService/internal/api/middleware"
	"github.com/m04kA/SMC-ShuttleService/internal/config"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/infra/cache"
	"github.com/m04kA/SMC-ShuttleService/internal/infra/migrations"
	bookingRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/booking"
	departureRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/departure"
	pricingRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/pricing"
	routeRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/route"
	scheduleRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/schedule"
	settingsRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/settings"
	vehicleRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/vehicle"
	authService "github.com/m04kA/SMC-ShuttleService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-ShuttleService/internal/service/bookings"
	departuresService "github.com/m04kA/SMC-ShuttleService/internal/service/departures"
	pricingService "github.com/m04kA/SMC-ShuttleService/internal/service/pricing"
	routesService "github.com/m04kA/SMC-ShuttleService/internal/service/routes"
	schedulesService "github.com/m04kA/SMC-ShuttleService/internal/service/schedules"
	vehiclesService "github.com/m04kA/SMC-ShuttleService/internal/service/vehicles"
	calculatePriceUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/calculate_price"
	createBookingUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/create_booking"
	generateDeparturesUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/generate_departures"
	getCapacityUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_capacity"
	getDeparturesUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_departures"
	getRoutesUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_routes"
	getSchedulesUC "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_schedules"
	"github.com/m04kA/SMC-ShuttleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
	"github.com/m04kA/SMC-ShuttleService/pkg/metrics"
	"github.com/m04kA/SMC-ShuttleService/pkg/txmanager"
)

// availabilityCache общий интерфейс Redis-кэша и заглушки для use cases и сервисов
type availabilityCache interface {
	DeparturesKey(ctx context.Context, from, to string, routeID *int64) (string, error)
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	InvalidateDepartures(ctx context.Context) error
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ShuttleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). Nil-коллектор везде безопасен
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Обёртка с метриками запросов; сбор статистики пула только при включенных метриках
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш доступности рейсов
	var availability availabilityCache = cache.Noop{}
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			// Без Redis сервис работает, просто всегда читает из БД
			log.Warn("Redis unavailable at %s, availability cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			availability = cache.NewAvailabilityCache(rdb,
				time.Duration(cfg.Redis.AvailabilityTTL)*time.Second, metricsCollector)
			log.Info("Availability cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.AvailabilityTTL)
		}
		cancelPing()
	}

	// Инициализируем репозитории
	routeRepository := routeRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	departureRepository := departureRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	vehicleRepository := vehicleRepo.NewRepository(wrappedDB)
	pricingRepository := pricingRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)

	defaultFees := domain.FeeSettings{
		ExtraLuggageFee: cfg.Pricing.DefaultExtraLuggageFee,
		PetFee:          cfg.Pricing.DefaultPetFee,
	}

	// Инициализируем сервисы
	admins := make([]authService.Admin, 0, len(cfg.Auth.Admins))
	for _, a := range cfg.Auth.Admins {
		admins = append(admins, authService.Admin{Username: a.Username, PasswordHash: a.PasswordHash})
	}
	if len(admins) == 0 {
		log.Warn("No admin accounts configured, admin API is unreachable")
	}
	authSvc := authService.NewService(
		admins,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, departureRepository, availability, txMgr, log)
	departureSvc := departuresService.NewService(
		departureRepository,
		vehicleRepository,
		bookingRepository,
		availability,
		txMgr,
		log,
	)
	pricingSvc := pricingService.NewService(pricingRepository, bookingRepository, settingsRepository, txMgr, log)
	routeSvc := routesService.NewService(routeRepository, availability, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, cfg.Booking.DefaultCapacity, log)
	vehicleSvc := vehiclesService.NewService(vehicleRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		departureRepository,
		bookingRepository,
		pricingRepository,
		settingsRepository,
		availability,
		metricsCollector,
		txMgr,
		log,
		defaultFees,
		cfg.Pricing.DefaultBasePrice,
	)
	generateDeparturesUseCase := generateDeparturesUC.NewUseCase(
		scheduleRepository,
		departureRepository,
		availability,
		metricsCollector,
		cfg.Booking.DefaultCapacity,
		cfg.Booking.GenerationWindowDays,
		log,
	)
	getDeparturesUseCase := getDeparturesUC.NewUseCase(
		departureRepository,
		availability,
		cfg.Booking.ListingWindowDays,
		log,
	)
	getSchedulesUseCase := getSchedulesUC.NewUseCase(
		scheduleRepository,
		departureRepository,
		cfg.Booking.UpcomingDeparturesLimit,
		log,
	)
	getRoutesUseCase := getRoutesUC.NewUseCase(
		routeRepository,
		scheduleRepository,
		departureRepository,
		cfg.Booking.UpcomingDeparturesLimit,
		log,
	)
	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		pricingRepository,
		settingsRepository,
		defaultFees,
		cfg.Pricing.DefaultBasePrice,
		log,
	)
	getCapacityUseCase := getCapacityUC.NewUseCase(departureRepository, log)

	// Инициализируем handlers
	getSchedules := getSchedulesHandler.NewHandler(getSchedulesUseCase, log)
	getRoutes := getRoutesHandler.NewHandler(getRoutesUseCase, log)
	getDepartures := getDeparturesHandler.NewHandler(getDeparturesUseCase, log)
	getPricing := getPricingHandler.NewHandler(calculatePriceUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)

	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	generateDepartures := generateDeparturesHandler.NewHandler(generateDeparturesUseCase, log)
	adminDepartures := adminDeparturesHandler.NewHandler(departureSvc, log)
	getCapacity := getCapacityHandler.NewHandler(getCapacityUseCase, log)
	adminRoutes := adminRoutesHandler.NewHandler(routeSvc, log)
	adminSchedules := adminSchedulesHandler.NewHandler(scheduleSvc, log)
	adminVehicles := adminVehiclesHandler.NewHandler(vehicleSvc, log)
	adminPricing := adminPricingHandler.NewHandler(pricingSvc, log)
	updateFees := updateFeesHandler.NewHandler(pricingSvc, log)
	markBookingPaid := markBookingPaidHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.OptionalUser)

	// ============================================================
	// PUBLIC ROUTES (X-User-ID необязателен, гостевые бронирования разрешены)
	// ============================================================

	api.HandleFunc("/schedules", getSchedules.Handle).Methods(http.MethodGet)
	api.HandleFunc("/routes", getRoutes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/departures", getDepartures.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing", getPricing.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Вход администратора (единственный публичный маршрут под /admin)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен с ролью admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc, log))

	// --- Рейсы ---
	admin.HandleFunc("/generate-departures", generateDepartures.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/departures/quick-generate", generateDepartures.HandleQuick).Methods(http.MethodPost)
	admin.HandleFunc("/departures/mark-booked", adminDepartures.MarkBooked).Methods(http.MethodPost)
	admin.HandleFunc("/departures/assign-vehicle", adminDepartures.AssignVehicle).Methods(http.MethodPost)
	admin.HandleFunc("/departures/{departureId}", adminDepartures.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/departures/{departureId}/manifest", adminDepartures.Manifest).Methods(http.MethodGet)

	// --- Маршруты и расписания ---
	admin.HandleFunc("/routes", adminRoutes.Create).Methods(http.MethodPost)
	admin.HandleFunc("/routes/{routeId}", adminRoutes.Update).Methods(http.MethodPut)
	admin.HandleFunc("/schedules/capacity", getCapacity.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/schedules", adminSchedules.Create).Methods(http.MethodPost)
	admin.HandleFunc("/schedules/{scheduleId}", adminSchedules.Update).Methods(http.MethodPut)

	// --- Автобусы ---
	admin.HandleFunc("/vehicles", adminVehicles.Create).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{vehicleId}", adminVehicles.Update).Methods(http.MethodPut)
	admin.HandleFunc("/vehicles/{vehicleId}", adminVehicles.Delete).Methods(http.MethodDelete)

	// --- Цены ---
	admin.HandleFunc("/pricing-tiers", adminPricing.CreateTier).Methods(http.MethodPost)
	admin.HandleFunc("/pricing-tiers/{tierId}", adminPricing.DeleteTier).Methods(http.MethodDelete)
	admin.HandleFunc("/settings/fees", updateFees.Handle).Methods(http.MethodPut)

	// --- Оплата ---
	admin.HandleFunc("/bookings/{bookingId}/paid", markBookingPaid.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
