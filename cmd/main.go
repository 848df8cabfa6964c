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

	addViolationHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/add_violation"
	calculateBillHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/calculate_bill"
	cancelRentalHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/cancel_rental"
	checkInHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/check_in"
	confirmPaymentHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/confirm_payment"
	confirmPickupHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/confirm_pickup"
	confirmReturnHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/confirm_return"
	holdDepositHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/hold_deposit"
	listDepositsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_deposits"
	listRentalsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_rentals"
	listReservationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_reservations"
	listViolationsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/list_violations"
	returnDepositHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/return_deposit"
	uploadEvidenceHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/upload_evidence"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	billRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/bill"
	depositRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/deposit"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	rentalCheckRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentalcheck"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	violationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/violation"
	evidenceStoreClient "github.com/m04kA/SMC-RentalService/internal/integrations/evidencestore"
	vehicleServiceClient "github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
	rentalsService "github.com/m04kA/SMC-RentalService/internal/service/rentals"
	reservationsService "github.com/m04kA/SMC-RentalService/internal/service/reservations"
	calculateBillUC "github.com/m04kA/SMC-RentalService/internal/usecase/calculate_bill"
	checkInUC "github.com/m04kA/SMC-RentalService/internal/usecase/check_in"
	confirmPaymentUC "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_payment"
	confirmPickupUC "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_pickup"
	confirmReturnUC "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_return"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
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

	log.Info("Starting SMC-RentalService...")
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

	// Инициализируем интеграционных клиентов
	vehicleClient := vehicleServiceClient.NewClient(
		cfg.VehicleService.URL,
		time.Duration(cfg.VehicleService.Timeout)*time.Second,
		log,
	)
	evidenceClient := evidenceStoreClient.NewClient(
		cfg.EvidenceStorage.URL,
		time.Duration(cfg.EvidenceStorage.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (VehicleService=%s timeout=%ds, EvidenceStorage=%s timeout=%ds)",
		cfg.VehicleService.URL, cfg.VehicleService.Timeout, cfg.EvidenceStorage.URL, cfg.EvidenceStorage.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		rentalRepository      *rentalRepo.Repository
		reservationRepository *reservationRepo.Repository
		checkRepository       *rentalCheckRepo.Repository
		depositRepository     *depositRepo.Repository
		violationRepository   *violationRepo.Repository
		billRepository        *billRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		rentalRepository = rentalRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		checkRepository = rentalCheckRepo.NewRepository(wrappedDB)
		depositRepository = depositRepo.NewRepository(wrappedDB)
		violationRepository = violationRepo.NewRepository(wrappedDB)
		billRepository = billRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		rentalRepository = rentalRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		checkRepository = rentalCheckRepo.NewRepository(db)
		depositRepository = depositRepo.NewRepository(db)
		violationRepository = violationRepo.NewRepository(db)
		billRepository = billRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	rentalSvc := rentalsService.NewService(
		rentalRepository,
		depositRepository,
		violationRepository,
		vehicleClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	checkInUseCase := checkInUC.NewUseCase(
		rentalRepository,
		reservationRepository,
		vehicleClient,
		txMgr,
		log,
	)
	confirmPickupUseCase := confirmPickupUC.NewUseCase(
		rentalRepository,
		checkRepository,
		evidenceClient,
		vehicleClient,
		txMgr,
		log,
	)
	confirmReturnUseCase := confirmReturnUC.NewUseCase(
		rentalRepository,
		checkRepository,
		evidenceClient,
		vehicleClient,
		txMgr,
		log,
	)
	calculateBillUseCase := calculateBillUC.NewUseCase(
		rentalRepository,
		violationRepository,
		depositRepository,
		billRepository,
		vehicleClient,
		txMgr,
		cfg.Billing.UnitMinutes,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		rentalRepository,
		billRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	listRentals := listRentalsHandler.NewHandler(rentalSvc, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	cancelRental := cancelRentalHandler.NewHandler(rentalSvc, log)
	holdDeposit := holdDepositHandler.NewHandler(rentalSvc, log)
	returnDeposit := returnDepositHandler.NewHandler(rentalSvc, log)
	confirmPickup := confirmPickupHandler.NewHandler(confirmPickupUseCase, log)
	confirmReturn := confirmReturnHandler.NewHandler(confirmReturnUseCase, log)
	addViolation := addViolationHandler.NewHandler(rentalSvc, log)
	listViolations := listViolationsHandler.NewHandler(rentalSvc, log)
	listDeposits := listDepositsHandler.NewHandler(rentalSvc, log)
	calculateBill := calculateBillHandler.NewHandler(calculateBillUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	uploadEvidence := uploadEvidenceHandler.NewHandler(evidenceClient, log)

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

	// Все staff-маршруты требуют X-Staff-ID header
	staff := r.PathPrefix("/api/v1/staff").Subrouter()
	staff.Use(middleware.Auth)

	// --- Брони ---
	staff.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// --- Аренды ---
	staff.HandleFunc("/rentals", listRentals.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/rentals/check-in", checkIn.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/confirm-pickup", confirmPickup.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/confirm-return", confirmReturn.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/add-violation", addViolation.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/{rentalId}/cancel", cancelRental.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/{rentalId}/hold-deposit", holdDeposit.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/{rentalId}/return-deposit", returnDeposit.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/{rentalId}/violations", listViolations.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/rentals/{rentalId}/deposits", listDeposits.Handle).Methods(http.MethodGet)
	staff.HandleFunc("/rentals/{rentalId}/bill", calculateBill.Handle).Methods(http.MethodPost)
	staff.HandleFunc("/rentals/{rentalId}/payment", confirmPayment.Handle).Methods(http.MethodPost)

	// --- Evidence ---
	staff.HandleFunc("/evidence", uploadEvidence.Handle).Methods(http.MethodPost)

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
