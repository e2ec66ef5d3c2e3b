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
	_ "modernc.org/sqlite"

	getAvailabilityHandler "github.com/m04kA/SMC-CourtAvailability/internal/api/handlers/get_availability"
	getCourtTimelineHandler "github.com/m04kA/SMC-CourtAvailability/internal/api/handlers/get_court_timeline"
	getFacilityMapHandler "github.com/m04kA/SMC-CourtAvailability/internal/api/handlers/get_facility_map"
	"github.com/m04kA/SMC-CourtAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-CourtAvailability/internal/config"
	"github.com/m04kA/SMC-CourtAvailability/internal/infra/cache"
	"github.com/m04kA/SMC-CourtAvailability/internal/infra/facilitytable"
	courtsRepo "github.com/m04kA/SMC-CourtAvailability/internal/infra/storage/courts"
	"github.com/m04kA/SMC-CourtAvailability/internal/infra/storage/schema"
	snapshotsRepo "github.com/m04kA/SMC-CourtAvailability/internal/infra/storage/snapshots"
	"github.com/m04kA/SMC-CourtAvailability/internal/scheduler"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/availability"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/courtsource"
	"github.com/m04kA/SMC-CourtAvailability/internal/service/facilities"
	getAvailabilityUC "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_availability"
	getCourtTimelineUC "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_court_timeline"
	getFacilityMapUC "github.com/m04kA/SMC-CourtAvailability/internal/usecase/get_facility_map"
	"github.com/m04kA/SMC-CourtAvailability/pkg/logger"
	"github.com/m04kA/SMC-CourtAvailability/pkg/metrics"
	"github.com/m04kA/SMC-CourtAvailability/pkg/psqlbuilder"
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

	log.Info("Starting SMC-CourtAvailability...")
	log.Info("Configuration loaded from config.toml")

	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.App.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
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

	if cfg.Database.Driver == psqlbuilder.DriverSQLite {
		if err := schema.EnsureSQLite(context.Background(), db); err != nil {
			log.Fatal("Failed to prepare sqlite schema: %v", err)
		}
		log.Info("Successfully opened sqlite database (path=%s)", cfg.Database.Path)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Таблица площадок
	facilityTable, err := facilitytable.Load(cfg.App.FacilitiesFile)
	if err != nil {
		log.Fatal("Failed to load facility table: %v", err)
	}
	log.Info("Facility table loaded: %d facilities", facilityTable.Len())

	// Кэш прошлых дат
	var availabilityCache getAvailabilityUC.Cache
	if cfg.Cache.Enabled {
		store, err := cache.NewBoltStore(cfg.Cache.Path)
		if err != nil {
			log.Fatal("Failed to open availability cache: %v", err)
		}
		defer store.Close()
		availabilityCache = store
		log.Info("Availability cache opened at %s", cfg.Cache.Path)
	}

	// Инициализируем репозитории
	courtRepository := courtsRepo.NewRepository(db, cfg.Database.Driver)
	snapshotRepository := snapshotsRepo.NewRepository(db, cfg.Database.Driver)

	// Инициализируем сервисы
	aggregator := availability.NewAggregator(facilities.NewResolver(facilityTable))
	courtSource := courtsource.NewService(courtRepository, snapshotRepository, location, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		courtSource,
		aggregator,
		availabilityCache,
		metricsCollector,
		log,
	)
	getCourtTimelineUseCase := getCourtTimelineUC.NewUseCase(courtSource, aggregator, log)
	getFacilityMapUseCase := getFacilityMapUC.NewUseCase(getAvailabilityUseCase, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getCourtTimeline := getCourtTimelineHandler.NewHandler(getCourtTimelineUseCase, log)
	getFacilityMap := getFacilityMapHandler.NewHandler(getFacilityMapUseCase, courtSource, log)

	// Планировщик прогрева кэша
	var warmup *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		warmup, err = scheduler.New(
			cfg.Scheduler.CronSpec,
			location,
			getAvailabilityUseCase,
			courtSource,
			metricsCollector,
			log,
		)
		if err != nil {
			log.Fatal("Failed to create scheduler: %v", err)
		}
		warmup.Start()
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Сводка доступности по площадкам
	api.HandleFunc("/availability/{date}", getAvailability.Handle).Methods(http.MethodGet)

	// Почасовая сетка кортов
	api.HandleFunc("/availability/{date}/timeline", getCourtTimeline.Handle).Methods(http.MethodGet)

	// Маркеры площадок для карты
	api.HandleFunc("/facilities", getFacilityMap.Handle).Methods(http.MethodGet)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if warmup != nil {
		warmup.Stop(shutdownCtx)
		log.Info("Scheduler stopped")
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
