package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/create_booking"
	createPaymentHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/create_payment"
	getAvailabilityHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/get_booking"
	getBookingPaymentHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/get_booking_payment"
	getCaretakerBookingsHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/get_caretaker_bookings"
	getCaretakerCalendarHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/get_caretaker_calendar"
	getUserBookingsHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/get_user_bookings"
	getUserPaymentsHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/get_user_payments"
	processPaymentHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/process_payment"
	refundPaymentHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/refund_payment"
	updateAvailabilityHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/update_availability"
	updateBookingStatusHandler "github.com/m04kA/SMC-PetCareService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareService/internal/config"
	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/infra/events"
	availabilityRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/payment"
	catalogServiceClient "github.com/m04kA/SMC-PetCareService/internal/integrations/catalogservice"
	userServiceClient "github.com/m04kA/SMC-PetCareService/internal/integrations/userservice"
	availabilityService "github.com/m04kA/SMC-PetCareService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-PetCareService/internal/service/bookings"
	paymentsService "github.com/m04kA/SMC-PetCareService/internal/service/payments"
	createBookingUC "github.com/m04kA/SMC-PetCareService/internal/usecase/create_booking"
	createPaymentUC "github.com/m04kA/SMC-PetCareService/internal/usecase/create_payment"
	getCaretakerCalendarUC "github.com/m04kA/SMC-PetCareService/internal/usecase/get_caretaker_calendar"
	updateBookingStatusUC "github.com/m04kA/SMC-PetCareService/internal/usecase/update_booking_status"
	"github.com/m04kA/SMC-PetCareService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
	"github.com/m04kA/SMC-PetCareService/pkg/metrics"
	"github.com/m04kA/SMC-PetCareService/pkg/txmanager"
)

// businessMetrics счетчики движка бронирований, общие для usecases и сервисов
type businessMetrics interface {
	IncBookingCreated()
	IncBookingTransition(from, to string)
	IncCapacityRejection(stage string)
	IncPayment(status string)
}

// eventPublisher публикация событий после коммита
type eventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-PetCareService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var bizMetrics businessMetrics = metrics.Noop{}
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		bizMetrics = metricsCollector
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

	// С nil-коллектором обёртка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	paymentRepository := paymentRepo.NewRepository(wrappedDB)

	// Публикация событий в Redis (если включена)
	var publisher eventPublisher = events.NoopPublisher{}

	if cfg.Redis.Enabled {
		redisClient := events.NewRedisClient(events.RedisConfig{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := events.Ping(pingCtx, redisClient); err != nil {
			// События не критичны для бронирований, продолжаем без них
			log.Warn("Redis is unavailable, events will be dropped until it recovers: %v", err)
		}
		cancel()

		publisher = events.NewPublisher(redisClient, cfg.Events.Channel, log)
		log.Info("Event publisher initialized (redis=%s, channel=%s)", cfg.Redis.Address, cfg.Events.Channel)
	} else {
		log.Info("Redis disabled, events are not published")
	}

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds, CatalogService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout, cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, userClient, txMgr, log)
	paymentSvc := paymentsService.NewService(paymentRepository, txMgr, publisher, bizMetrics, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		catalogClient,
		userClient,
		txMgr,
		publisher,
		bizMetrics,
		log,
	)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		txMgr,
		publisher,
		bizMetrics,
		log,
	)
	createPaymentUseCase := createPaymentUC.NewUseCase(
		bookingRepository,
		paymentRepository,
		txMgr,
		publisher,
		bizMetrics,
		log,
	)

	getCaretakerCalendarUseCase := getCaretakerCalendarUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getCaretakerBookings := getCaretakerBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	getCaretakerCalendar := getCaretakerCalendarHandler.NewHandler(getCaretakerCalendarUseCase, log)
	createPayment := createPaymentHandler.NewHandler(createPaymentUseCase, log)
	processPayment := processPaymentHandler.NewHandler(paymentSvc, log)
	refundPayment := refundPaymentHandler.NewHandler(paymentSvc, log)
	getBookingPayment := getBookingPaymentHandler.NewHandler(paymentSvc, log)
	getUserPayments := getUserPaymentsHandler.NewHandler(paymentSvc, log)

	// Лимит на создание бронирований с одного адреса
	createBookingHandle := createBooking.Handle
	if cfg.RateLimit.CreateBookingPerMinute > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CreateBookingPerMinute, time.Minute, cfg.RateLimit.TrustProxy, log)
		go limiter.RunEviction(time.Minute, 10*time.Minute, stopMetricsCh)
		createBookingHandle = limiter.Limit(createBooking.Handle)
		log.Info("Rate limit on booking creation: %d/min per client, trust_proxy=%t",
			cfg.RateLimit.CreateBookingPerMinute, cfg.RateLimit.TrustProxy)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/caretakers/{caretakerId:[0-9]+}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/caretakers/{caretakerId:[0-9]+}/calendar", getCaretakerCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// /bookings/mine регистрируется раньше /bookings/{bookingId}
	protected.HandleFunc("/bookings", createBookingHandle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/mine", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/payment", getBookingPayment.Handle).Methods(http.MethodGet)

	// --- Доступность ситтера ---
	protected.HandleFunc("/caretakers/me/availability", updateAvailability.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/caretakers/me/bookings", getCaretakerBookings.Handle).Methods(http.MethodGet)

	// --- Платежи ---
	protected.HandleFunc("/payments", createPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/mine", getUserPayments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/payments/{paymentId}/process", processPayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/{paymentId}/refund", refundPayment.Handle).Methods(http.MethodPost)

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
