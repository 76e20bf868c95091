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

	addTimeOffHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/add_time_off"
	cancelBookingHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/cancel_booking"
	checkRecurringHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/check_recurring_availability"
	createBookingHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/create_booking"
	createRecurringHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/create_recurring_bookings"
	deleteTimeOffHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/delete_time_off"
	getAvailableSlotsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_available_slots"
	getBarberBookingsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_barber_bookings"
	getBarberScheduleHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_barber_schedule"
	getBookingHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_customer_bookings"
	getPriceHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/get_price"
	updateAvailabilityHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/update_availability"
	updateBookingStatusHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/update_booking_status"
	upsertPricingHandler "github.com/m04kA/barbershop-booking/internal/api/handlers/upsert_pricing"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/config"
	"github.com/m04kA/barbershop-booking/internal/infra/cache"
	availabilityRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	bookingRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/booking"
	pricingRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/pricing"
	serviceRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/service"
	timeOffRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/timeoff"
	bookingsService "github.com/m04kA/barbershop-booking/internal/service/bookings"
	scheduleService "github.com/m04kA/barbershop-booking/internal/service/schedule"
	checkRecurringUC "github.com/m04kA/barbershop-booking/internal/usecase/check_recurring_availability"
	createBookingUC "github.com/m04kA/barbershop-booking/internal/usecase/create_booking"
	createRecurringUC "github.com/m04kA/barbershop-booking/internal/usecase/create_recurring_bookings"
	getAvailableSlotsUC "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	getPriceUC "github.com/m04kA/barbershop-booking/internal/usecase/get_price"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
	"github.com/m04kA/barbershop-booking/pkg/logger"
	"github.com/m04kA/barbershop-booking/pkg/metrics"
	"github.com/m04kA/barbershop-booking/pkg/txmanager"
)

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

	log.Info("Starting barbershop-booking...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}
	timeProvider := &getAvailableSlotsUC.RealTimeProvider{Location: location}

	// Инициализируем метрики (если включены); nil метрики везде допустимы
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Подключаемся к Redis (кэш цен необязателен)
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable at %s, pricing cache falls back to database: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Pricing cache enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
		}
		cancelPing()
	}

	// Инициализируем репозитории
	barberRepository := barberRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	timeOffRepository := timeOffRepo.NewRepository(wrappedDB)
	pricingRepository := pricingRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)

	pricingCache := cache.NewPricingCache(pricingRepository, redisClient, cfg.Redis.TTL(), metricsCollector, log)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		barberRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		barberRepository,
		serviceRepository,
		availabilityRepository,
		timeOffRepository,
		pricingRepository,
		pricingCache,
		txMgr,
		timeProvider,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		barberRepository,
		serviceRepository,
		availabilityRepository,
		timeOffRepository,
		bookingRepository,
		pricingCache,
		metricsCollector,
		timeProvider,
		cfg.Booking.PastSlotBufferMinutes,
		log,
	)

	getPriceUseCase := getPriceUC.NewUseCase(
		barberRepository,
		serviceRepository,
		pricingCache,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		barberRepository,
		serviceRepository,
		availabilityRepository,
		timeOffRepository,
		pricingCache,
		txMgr,
		metricsCollector,
		timeProvider,
		cfg.Booking.PastSlotBufferMinutes,
		log,
	)

	checkRecurringUseCase := checkRecurringUC.NewUseCase(
		barberRepository,
		serviceRepository,
		availabilityRepository,
		timeOffRepository,
		bookingRepository,
		pricingCache,
		timeProvider,
		cfg.Booking.PastSlotBufferMinutes,
		cfg.Booking.MaxRecurringOccurrences,
		log,
	)

	createRecurringUseCase := createRecurringUC.NewUseCase(
		bookingRepository,
		barberRepository,
		serviceRepository,
		availabilityRepository,
		timeOffRepository,
		pricingCache,
		txMgr,
		metricsCollector,
		timeProvider,
		cfg.Booking.PastSlotBufferMinutes,
		cfg.Booking.MaxRecurringOccurrences,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getPrice := getPriceHandler.NewHandler(getPriceUseCase, log)
	checkRecurring := checkRecurringHandler.NewHandler(checkRecurringUseCase, log)
	getBarberSchedule := getBarberScheduleHandler.NewHandler(scheduleSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createRecurring := createRecurringHandler.NewHandler(createRecurringUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getBarberBookings := getBarberBookingsHandler.NewHandler(bookingSvc, log)

	updateAvailability := updateAvailabilityHandler.NewHandler(scheduleSvc, log)
	addTimeOff := addTimeOffHandler.NewHandler(scheduleSvc, log)
	deleteTimeOff := deleteTimeOffHandler.NewHandler(scheduleSvc, log)
	upsertPricing := upsertPricingHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты барбера на дату
	api.HandleFunc("/barbers/{barberId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Цена услуги в указанное время
	api.HandleFunc("/barbers/{barberId}/price", getPrice.Handle).Methods(http.MethodGet)

	// Проверка доступности серии повторяющихся записей
	api.HandleFunc("/barbers/{barberId}/recurring-availability", checkRecurring.Handle).Methods(http.MethodPost)

	// Расписание барбера (рабочие блоки, отпуска, цены)
	api.HandleFunc("/barbers/{barberId}/schedule", getBarberSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования клиента ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/recurring", createRecurring.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Управление расписанием (для барбера) ---
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/barbers/{barberId}/bookings", getBarberBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/barbers/{barberId}/availability", updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/barbers/{barberId}/time-off", addTimeOff.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/barbers/{barberId}/time-off/{timeOffId}", deleteTimeOff.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/barbers/{barberId}/pricing", upsertPricing.Handle).Methods(http.MethodPut)

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
