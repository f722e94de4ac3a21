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

	adminVideosHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/admin_videos"
	blockedDatesHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/blocked_dates"
	cancelBookingHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/create_booking"
	createCheckoutSessionHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/create_checkout_session"
	getAdminBookingsHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/get_admin_bookings"
	getAvailableSlotsHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/get_available_slots"
	getBookableDatesHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/get_bookable_dates"
	getBookingHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/get_client_bookings"
	getPricingTiersHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/get_pricing_tiers"
	getSessionTypesHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/get_session_types"
	listVideosHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/list_videos"
	siteSettingsHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/site_settings"
	updateBookingStatusHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/update_booking_status"
	weeklyScheduleHandler "github.com/resilientmind/coaching-platform/internal/api/handlers/weekly_schedule"
	"github.com/resilientmind/coaching-platform/internal/api/middleware"
	"github.com/resilientmind/coaching-platform/internal/config"
	"github.com/resilientmind/coaching-platform/internal/infra/migrations"
	bookingRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/booking"
	scheduleRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/schedule"
	settingsRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/settings"
	videosRepo "github.com/resilientmind/coaching-platform/internal/infra/storage/videos"
	brevoClient "github.com/resilientmind/coaching-platform/internal/integrations/brevo"
	checkoutClient "github.com/resilientmind/coaching-platform/internal/integrations/checkout"
	availabilityService "github.com/resilientmind/coaching-platform/internal/service/availability"
	bookingsService "github.com/resilientmind/coaching-platform/internal/service/bookings"
	contentService "github.com/resilientmind/coaching-platform/internal/service/content"
	settingsService "github.com/resilientmind/coaching-platform/internal/service/settings"
	createBookingUC "github.com/resilientmind/coaching-platform/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/resilientmind/coaching-platform/internal/usecase/get_available_slots"
	getBookableDatesUC "github.com/resilientmind/coaching-platform/internal/usecase/get_bookable_dates"
	"github.com/resilientmind/coaching-platform/pkg/dbmetrics"
	"github.com/resilientmind/coaching-platform/pkg/logger"
	"github.com/resilientmind/coaching-platform/pkg/metrics"
	"github.com/resilientmind/coaching-platform/pkg/simpletxmanager"
	"github.com/resilientmind/coaching-platform/pkg/txmanager"
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

	log.Info("Starting coaching-platform...")
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

	// Применяем миграции (если включены)
	if cfg.Database.Migrate {
		if err := migrations.Up(context.Background(), db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrations.Version(context.Background(), db)
		if err != nil {
			log.Fatal("Failed to read migration version: %v", err)
		}
		log.Info("Database migrations applied, schema version=%d", version)
	}

	// Политика бронирования из конфигурации
	policy := cfg.Booking.Policy()
	log.Info("Booking policy: lead_time=%dmin, advance_days=%d, calendar_range=%d",
		policy.MinLeadTimeMinutes, policy.AdvanceBookingDays, policy.CalendarMaxRangeDays)

	// Инициализируем интеграционных клиентов
	brevo := brevoClient.NewClient(
		cfg.Brevo.BaseURL,
		cfg.Brevo.APIKey,
		cfg.Brevo.SenderName,
		cfg.Brevo.SenderEmail,
		cfg.Brevo.ContactListIDs,
		time.Duration(cfg.Brevo.Timeout)*time.Second,
		log,
	)
	checkout := checkoutClient.NewClient(
		cfg.Checkout.BaseURL,
		cfg.Checkout.APIKey,
		cfg.Checkout.SuccessURL,
		cfg.Checkout.CancelURL,
		time.Duration(cfg.Checkout.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Brevo=%s timeout=%ds, Checkout=%s timeout=%ds)",
		cfg.Brevo.BaseURL, cfg.Brevo.Timeout, cfg.Checkout.BaseURL, cfg.Checkout.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		videosRepository   *videosRepo.Repository
		settingsRepository *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		videosRepository = videosRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		videosRepository = videosRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(scheduleRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	contentSvc := contentService.NewService(videosRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Инициализируем use cases
	getBookableDatesUseCase := getBookableDatesUC.NewUseCase(availabilitySvc, policy, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, availabilitySvc, policy, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, availabilitySvc, txMgr, policy, log)

	// Инициализируем handlers
	getBookableDates := getBookableDatesHandler.NewHandler(getBookableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSessionTypes := getSessionTypesHandler.NewHandler()
	getPricingTiers := getPricingTiersHandler.NewHandler()
	listVideos := listVideosHandler.NewHandler(contentSvc, log)
	createCheckoutSession := createCheckoutSessionHandler.NewHandler(checkout, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, brevo, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)

	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	weeklySchedule := weeklyScheduleHandler.NewHandler(availabilitySvc, log)
	blockedDates := blockedDatesHandler.NewHandler(availabilitySvc, log)
	adminVideos := adminVideosHandler.NewHandler(contentSvc, log)
	siteSettings := siteSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь доступных дат
	api.HandleFunc("/availability/dates", getBookableDates.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Каталог типов сессий
	api.HandleFunc("/session-types", getSessionTypes.Handle).Methods(http.MethodGet)

	// Витрина тарифов членства
	api.HandleFunc("/pricing/tiers", getPricingTiers.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// Видео-библиотека по тарифу клиента
	protected.HandleFunc("/videos", listVideos.Handle).Methods(http.MethodGet)

	// Оформление членства через платёжного провайдера
	protected.HandleFunc("/checkout/sessions", createCheckoutSession.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly)

	// Бронирования с фильтрацией
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Недельное расписание
	admin.HandleFunc("/availability/weekly", weeklySchedule.HandleGet).Methods(http.MethodGet)
	admin.HandleFunc("/availability/weekly/{day}", weeklySchedule.HandleUpdate).Methods(http.MethodPut)

	// Заблокированные даты
	admin.HandleFunc("/availability/blocked-dates", blockedDates.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/availability/blocked-dates", blockedDates.HandleAdd).Methods(http.MethodPost)
	admin.HandleFunc("/availability/blocked-dates/{date}", blockedDates.HandleRemove).Methods(http.MethodDelete)

	// Видео-библиотека
	admin.HandleFunc("/videos", adminVideos.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/videos", adminVideos.HandleCreate).Methods(http.MethodPost)
	admin.HandleFunc("/videos/{videoId}", adminVideos.HandleDelete).Methods(http.MethodDelete)

	// Настройки сайта
	admin.HandleFunc("/settings", siteSettings.HandleList).Methods(http.MethodGet)
	admin.HandleFunc("/settings/{key}", siteSettings.HandleUpsert).Methods(http.MethodPut)
	admin.HandleFunc("/settings/{key}", siteSettings.HandleDelete).Methods(http.MethodDelete)

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
