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
	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/cancel_booking"
	checkServiceEligibilityHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/check_service_eligibility"
	completeBookingHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/create_booking"
	createCustomerHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/create_customer"
	createServiceCenterHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/create_service_center"
	createVehicleHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/create_vehicle"
	deleteCustomerHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/delete_customer"
	deleteServiceCenterHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/delete_service_center"
	deleteVehicleHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/delete_vehicle"
	downloadBookingDocumentHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/download_booking_document"
	getBookingHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_booking"
	getBookingCostHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_booking_cost"
	getBookingDocumentsHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_booking_documents"
	getBookingReportsHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_booking_reports"
	getBookingsHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_bookings"
	getCenterPerformanceHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_center_performance"
	getCustomerHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_customer"
	getCustomerBookingsHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_customer_bookings"
	getCustomerHistoryHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_customer_history"
	getCustomerVehiclesHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_customer_vehicles"
	getCustomersHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_customers"
	getServiceCenterHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_service_center"
	getServiceCentersHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_service_centers"
	getVehicleHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/get_vehicle"
	scheduleMaintenanceHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/schedule_maintenance"
	updateBookingHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/update_booking"
	updateCustomerHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/update_customer"
	updateServiceCenterHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/update_service_center"
	updateVehicleHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/update_vehicle"
	uploadBookingReportHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/upload_booking_report"
	uploadVehicleImageHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/upload_vehicle_image"
	validateVehicleHandler "github.com/m04kA/SMC-VehicleService/internal/api/handlers/validate_vehicle"
	"github.com/m04kA/SMC-VehicleService/internal/api/middleware"
	"github.com/m04kA/SMC-VehicleService/internal/config"
	"github.com/m04kA/SMC-VehicleService/internal/infra/dispatch"
	"github.com/m04kA/SMC-VehicleService/internal/infra/migrate"
	"github.com/m04kA/SMC-VehicleService/internal/infra/scheduler"
	bookingRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/customer"
	documentRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/document"
	centerRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/servicecenter"
	vehicleRepo "github.com/m04kA/SMC-VehicleService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-VehicleService/internal/lifecycle"
	bookingsService "github.com/m04kA/SMC-VehicleService/internal/service/bookings"
	centersService "github.com/m04kA/SMC-VehicleService/internal/service/centers"
	customersService "github.com/m04kA/SMC-VehicleService/internal/service/customers"
	documentsService "github.com/m04kA/SMC-VehicleService/internal/service/documents"
	reportsService "github.com/m04kA/SMC-VehicleService/internal/service/reports"
	vehiclesService "github.com/m04kA/SMC-VehicleService/internal/service/vehicles"
	completeBookingUC "github.com/m04kA/SMC-VehicleService/internal/usecase/complete_booking"
	createBookingUC "github.com/m04kA/SMC-VehicleService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VehicleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VehicleService/pkg/logger"
	"github.com/m04kA/SMC-VehicleService/pkg/metrics"
	"github.com/m04kA/SMC-VehicleService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-VehicleService/pkg/txmanager"
)

const metricsPath = "/metrics"

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

	log.Info("Starting SMC-VehicleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", metricsPath)
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
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetimeMin) * time.Minute)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	migrator, err := migrate.NewMigrator(db, cfg.Database.MigrationsDir, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	// Подключаемся к NATS
	nc, err := nats.Connect(cfg.NATS.URL)
	if err != nil {
		log.Fatal("Failed to connect to NATS: %v", err)
	}
	defer func() {
		if err := nc.Drain(); err != nil {
			log.Error("NATS drain failed: %v", err)
		}
	}()
	log.Info("Successfully connected to NATS (url=%s, subject_prefix=%s)",
		cfg.NATS.URL, cfg.NATS.SubjectPrefix)

	// Инициализируем доставку уведомлений и планировщик напоминаний
	notifier := dispatch.NewNotifier(nc, cfg.NATS.SubjectPrefix, log)
	queue := dispatch.NewQueue(nc, cfg.NATS.SubjectPrefix, log)

	sched := scheduler.New(notifier, log, time.Duration(cfg.Scheduler.TickSec)*time.Second)
	sched.Start()
	log.Info("Reminder scheduler started (tick=%ds)", cfg.Scheduler.TickSec)

	dispatcher := dispatch.NewDispatcher(notifier, queue, sched, log)

	// Ядро жизненного цикла бронирований
	engine := lifecycle.NewEngine(cfg.Scheduler.RulePrefix)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		customerRepository *customerRepo.Repository
		vehicleRepository  *vehicleRepo.Repository
		centerRepository   *centerRepo.Repository
		documentRepository *documentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		centerRepository = centerRepo.NewRepository(wrappedDB)
		documentRepository = documentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		centerRepository = centerRepo.NewRepository(db)
		documentRepository = documentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		customerRepository,
		engine,
		dispatcher,
		log,
	)
	customerSvc := customersService.NewService(
		customerRepository,
		bookingRepository,
		log,
	)
	vehicleSvc := vehiclesService.NewService(
		vehicleRepository,
		customerRepository,
		engine,
		dispatcher,
		log,
	)
	centerSvc := centersService.NewService(
		centerRepository,
		bookingRepository,
		log,
	)
	documentSvc := documentsService.NewService(
		documentRepository,
		bookingRepository,
		vehicleRepository,
		log,
	)
	reportSvc := reportsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		customerRepository,
		vehicleRepository,
		centerRepository,
		engine,
		dispatcher,
		txMgr,
		log,
	)

	completeBookingUseCase := completeBookingUC.NewUseCase(
		bookingRepository,
		customerRepository,
		engine,
		dispatcher,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	completeBooking := completeBookingHandler.NewHandler(completeBookingUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBookingCost := getBookingCostHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)

	createCustomer := createCustomerHandler.NewHandler(customerSvc, log)
	getCustomers := getCustomersHandler.NewHandler(customerSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customerSvc, log)
	updateCustomer := updateCustomerHandler.NewHandler(customerSvc, log)
	deleteCustomer := deleteCustomerHandler.NewHandler(customerSvc, log)
	getCustomerHistory := getCustomerHistoryHandler.NewHandler(customerSvc, log)

	createVehicle := createVehicleHandler.NewHandler(vehicleSvc, log)
	getVehicle := getVehicleHandler.NewHandler(vehicleSvc, log)
	getCustomerVehicles := getCustomerVehiclesHandler.NewHandler(vehicleSvc, log)
	updateVehicle := updateVehicleHandler.NewHandler(vehicleSvc, log)
	deleteVehicle := deleteVehicleHandler.NewHandler(vehicleSvc, log)
	validateVehicle := validateVehicleHandler.NewHandler(vehicleSvc, log)
	checkServiceEligibility := checkServiceEligibilityHandler.NewHandler(vehicleSvc, log)
	scheduleMaintenance := scheduleMaintenanceHandler.NewHandler(vehicleSvc, log)

	createServiceCenter := createServiceCenterHandler.NewHandler(centerSvc, log)
	getServiceCenters := getServiceCentersHandler.NewHandler(centerSvc, log)
	getServiceCenter := getServiceCenterHandler.NewHandler(centerSvc, log)
	updateServiceCenter := updateServiceCenterHandler.NewHandler(centerSvc, log)
	deleteServiceCenter := deleteServiceCenterHandler.NewHandler(centerSvc, log)
	getCenterPerformance := getCenterPerformanceHandler.NewHandler(centerSvc, log)

	uploadBookingReport := uploadBookingReportHandler.NewHandler(documentSvc, log)
	getBookingDocuments := getBookingDocumentsHandler.NewHandler(documentSvc, log)
	downloadBookingDocument := downloadBookingDocumentHandler.NewHandler(documentSvc, log)
	uploadVehicleImage := uploadVehicleImageHandler.NewHandler(documentSvc, log)

	getBookingReports := getBookingReportsHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Ограничение частоты запросов
	r.Use(middleware.RateLimit(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(metricsPath, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", metricsPath)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований с фильтрами
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Обновление бронирования
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)

	// Отмена бронирования
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Завершение обслуживания
	api.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPost)

	// Оценка стоимости обслуживания
	api.HandleFunc("/bookings/{bookingId}/cost", getBookingCost.Handle).Methods(http.MethodGet)

	// --- Документы бронирования ---
	// Загрузка сервисного отчета
	api.HandleFunc("/bookings/{bookingId}/documents", uploadBookingReport.Handle).Methods(http.MethodPost)

	// Список документов бронирования
	api.HandleFunc("/bookings/{bookingId}/documents", getBookingDocuments.Handle).Methods(http.MethodGet)

	// Скачивание документа
	api.HandleFunc("/bookings/{bookingId}/documents/{filename}", downloadBookingDocument.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	// Регистрация клиента
	api.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)

	// Список клиентов
	api.HandleFunc("/customers", getCustomers.Handle).Methods(http.MethodGet)

	// Получение клиента по ID
	api.HandleFunc("/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)

	// Обновление данных клиента
	api.HandleFunc("/customers/{customerId}", updateCustomer.Handle).Methods(http.MethodPut)

	// Удаление клиента
	api.HandleFunc("/customers/{customerId}", deleteCustomer.Handle).Methods(http.MethodDelete)

	// История бронирований клиента
	api.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// Сводка истории обслуживания клиента
	api.HandleFunc("/customers/{customerId}/service-history", getCustomerHistory.Handle).Methods(http.MethodGet)

	// Автомобили клиента
	api.HandleFunc("/customers/{customerId}/vehicles", getCustomerVehicles.Handle).Methods(http.MethodGet)

	// --- Автомобили ---
	// Регистрация автомобиля
	api.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)

	// Получение автомобиля по ID
	api.HandleFunc("/vehicles/{vehicleId}", getVehicle.Handle).Methods(http.MethodGet)

	// Обновление данных автомобиля
	api.HandleFunc("/vehicles/{vehicleId}", updateVehicle.Handle).Methods(http.MethodPut)

	// Удаление автомобиля
	api.HandleFunc("/vehicles/{vehicleId}", deleteVehicle.Handle).Methods(http.MethodDelete)

	// Проверка регистрационных данных
	api.HandleFunc("/vehicles/{vehicleId}/validate", validateVehicle.Handle).Methods(http.MethodGet)

	// Проверка применимости услуги
	api.HandleFunc("/vehicles/{vehicleId}/service-eligibility", checkServiceEligibility.Handle).Methods(http.MethodGet)

	// Загрузка фотографии автомобиля
	api.HandleFunc("/vehicles/{vehicleId}/images", uploadVehicleImage.Handle).Methods(http.MethodPost)

	// Постановка регулярного ТО в расписание
	api.HandleFunc("/vehicles/{vehicleId}/maintenance-schedule", scheduleMaintenance.Handle).Methods(http.MethodPost)

	// --- Сервисные центры ---
	// Регистрация сервисного центра
	api.HandleFunc("/service-centers", createServiceCenter.Handle).Methods(http.MethodPost)

	// Список сервисных центров с фильтрами
	api.HandleFunc("/service-centers", getServiceCenters.Handle).Methods(http.MethodGet)

	// Получение сервисного центра по ID
	api.HandleFunc("/service-centers/{centerId}", getServiceCenter.Handle).Methods(http.MethodGet)

	// Обновление данных сервисного центра
	api.HandleFunc("/service-centers/{centerId}", updateServiceCenter.Handle).Methods(http.MethodPut)

	// Удаление сервисного центра
	api.HandleFunc("/service-centers/{centerId}", deleteServiceCenter.Handle).Methods(http.MethodDelete)

	// Показатели работы сервисного центра
	api.HandleFunc("/service-centers/{centerId}/performance", getCenterPerformance.Handle).Methods(http.MethodGet)

	// --- Отчеты ---
	// Сводный или месячный отчет по бронированиям
	api.HandleFunc("/reports/bookings", getBookingReports.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSec) * time.Second,
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

	// Останавливаем планировщик напоминаний
	sched.Stop()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeoutSec)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
