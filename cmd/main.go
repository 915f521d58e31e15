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

	checkAvailabilityHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_booking"
	getDaySummaryHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_day_summary"
	listBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/list_bookings"
	updateBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	checkAvailabilityUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	getDaySummaryUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_day_summary"
	updateBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

// bookingStore хранилище бронирований, общее для всех бэкендов
type bookingStore interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ReplaceAll(ctx context.Context, bookings []*domain.Booking) error
}

// txManager интерфейс для transaction manager (используется в usecases и сервисе)
type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

	log.Info("Starting SMC-RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.Inventory.Location()
	if err != nil {
		log.Fatal("Invalid inventory timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище бронирований выбранного драйвера
	store, txMgr, closeStore, err := openStorage(cfg, metricsCollector, stopMetricsCh, log)
	if err != nil {
		log.Fatal("Failed to initialize %s storage: %v", cfg.Storage.Driver, err)
	}
	defer closeStore()

	// Калькулятор наличия номеров: один номерной фонд, дни в часовом поясе инвентаря
	calculator := availability.NewCalculator(cfg.Inventory.TotalRooms, location)
	log.Info("Inventory: %d rooms, timezone=%s", cfg.Inventory.TotalRooms, location)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		store,
		txMgr,
		bookingsService.UUIDGenerator{},
		bookingsService.RealTimeProvider{},
		cfg.Inventory.TotalRooms,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store,
		bookingSvc,
		calculator,
		txMgr,
		metricsCollector,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(store, calculator, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		store,
		bookingSvc,
		calculator,
		txMgr,
		log,
	)
	getDaySummaryUseCase := getDaySummaryUC.NewUseCase(store, calculator, log)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, location, log)
	getDaySummary := getDaySummaryHandler.NewHandler(getDaySummaryUseCase, location, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, location, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, location, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Наличие номеров ---
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/days/{date}", getDaySummary.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

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

	log.Info("Server exited")
}

// openStorage создает хранилище и подходящий ему transaction manager
// postgres - SQL-транзакции SERIALIZABLE, redis и memory - единственный писатель в процессе
func openStorage(
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (bookingStore, txManager, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, nil, fmt.Errorf("ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var wrappedDB *dbmetrics.DB
		if cfg.Metrics.Enabled {
			wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")
		} else {
			wrappedDB = dbmetrics.Plain(db)
		}

		closeFn := func() { _ = db.Close() }
		return bookingRepo.NewRepository(wrappedDB), txmanager.NewTransactionManager(wrappedDB), closeFn, nil

	case config.StorageDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		log.Info("Successfully connected to redis (addr=%s, key=%s)", cfg.Redis.Addr, cfg.Redis.Key)

		closeFn := func() { _ = client.Close() }
		return bookingRepo.NewRedisRepository(client, cfg.Redis.Key), simpletxmanager.NewTransactionManager(), closeFn, nil

	case config.StorageDriverMemory:
		log.Warn("Using in-memory storage, bookings are lost on restart")
		return bookingRepo.NewMemoryRepository(), simpletxmanager.NewTransactionManager(), func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf("%w: unknown storage driver %q", config.ErrInvalidConfig, cfg.Storage.Driver)
	}
}
