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

	cancelReservationHandler "github.com/junhyeong9812/hexapass-sub002/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/junhyeong9812/hexapass-sub002/internal/api/handlers/create_reservation"
	getMemberReservationsHandler "github.com/junhyeong9812/hexapass-sub002/internal/api/handlers/get_member_reservations"
	getReservationHandler "github.com/junhyeong9812/hexapass-sub002/internal/api/handlers/get_reservation"
	getResourceReservationsHandler "github.com/junhyeong9812/hexapass-sub002/internal/api/handlers/get_resource_reservations"
	quotePriceHandler "github.com/junhyeong9812/hexapass-sub002/internal/api/handlers/quote_price"
	"github.com/junhyeong9812/hexapass-sub002/internal/api/middleware"
	"github.com/junhyeong9812/hexapass-sub002/internal/config"
	policyConfigRepo "github.com/junhyeong9812/hexapass-sub002/internal/infra/storage/policyconfig"
	reservationRepo "github.com/junhyeong9812/hexapass-sub002/internal/infra/storage/reservation"
	memberServiceClient "github.com/junhyeong9812/hexapass-sub002/internal/integrations/memberservice"
	reservationsService "github.com/junhyeong9812/hexapass-sub002/internal/service/reservations"
	cancelReservationUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/cancel_reservation"
	createReservationUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/create_reservation"
	quotePriceUC "github.com/junhyeong9812/hexapass-sub002/internal/usecase/quote_price"
	"github.com/junhyeong9812/hexapass-sub002/pkg/dbmetrics"
	"github.com/junhyeong9812/hexapass-sub002/pkg/logger"
	"github.com/junhyeong9812/hexapass-sub002/pkg/metrics"
	"github.com/junhyeong9812/hexapass-sub002/pkg/simpletxmanager"
	"github.com/junhyeong9812/hexapass-sub002/pkg/txmanager"
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

	log.Info("Starting HexaPass ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиент MemberService
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (MemberService=%s timeout=%ds)",
		cfg.MemberService.URL, cfg.MemberService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository  *reservationRepo.Repository
		policyConfigRepository *policyConfigRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		policyConfigRepository = policyConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		policyConfigRepository = policyConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	timeProvider := createReservationUC.RealTimeProvider{}

	createReservationUseCase := createReservationUC.NewUsecase(
		reservationRepository,
		policyConfigRepository,
		memberClient,
		txMgr,
		timeProvider,
		log,
	)

	cancelReservationUseCase := cancelReservationUC.NewUsecase(
		reservationRepository,
		policyConfigRepository,
		memberClient,
		cancelReservationUC.RealTimeProvider{},
		log,
	)

	quotePriceUseCase := quotePriceUC.NewUsecase(
		policyConfigRepository,
		memberClient,
		quotePriceUC.RealTimeProvider{},
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getMemberReservations := getMemberReservationsHandler.NewHandler(reservationsSvc, log)
	getResourceReservations := getResourceReservationsHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Все маршруты требуют X-User-ID header
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Предварительный расчёт цены без создания бронирования
	protected.HandleFunc("/reservations/quote", quotePrice.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// История бронирований участника
	protected.HandleFunc("/members/{memberId}/reservations", getMemberReservations.Handle).Methods(http.MethodGet)

	// Бронирования ресурса (для провайдеров)
	protected.HandleFunc("/resources/{resourceId}/reservations", getResourceReservations.Handle).Methods(http.MethodGet)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
