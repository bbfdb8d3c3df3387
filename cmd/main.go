package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookShiftHandler "github.com/m04kA/HSP-ShiftService/internal/api/handlers/book_shift"
	cancelShiftHandler "github.com/m04kA/HSP-ShiftService/internal/api/handlers/cancel_shift"
	getShiftFeedHandler "github.com/m04kA/HSP-ShiftService/internal/api/handlers/get_shift_feed"
	"github.com/m04kA/HSP-ShiftService/internal/api/middleware"
	"github.com/m04kA/HSP-ShiftService/internal/config"
	shiftCache "github.com/m04kA/HSP-ShiftService/internal/infra/cache/shifts"
	shiftProviderClient "github.com/m04kA/HSP-ShiftService/internal/integrations/shiftprovider"
	shiftsService "github.com/m04kA/HSP-ShiftService/internal/service/shifts"
	getShiftFeedUC "github.com/m04kA/HSP-ShiftService/internal/usecase/get_shift_feed"
	"github.com/m04kA/HSP-ShiftService/pkg/clientmetrics"
	"github.com/m04kA/HSP-ShiftService/pkg/logger"
	"github.com/m04kA/HSP-ShiftService/pkg/metrics"
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

	log.Info("Starting HSP-ShiftService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент сервиса смен
	providerClient := shiftProviderClient.NewClient(
		cfg.ShiftProvider.URL,
		time.Duration(cfg.ShiftProvider.Timeout)*time.Second,
		log,
	)
	log.Info("Shift provider client initialized (url=%s, timeout=%ds)",
		cfg.ShiftProvider.URL, cfg.ShiftProvider.Timeout)

	// Провайдер с метриками или без
	var provider shiftsService.ShiftProviderClient = providerClient
	if cfg.Metrics.Enabled {
		provider = clientmetrics.Wrap(providerClient, metricsCollector)
		log.Info("Shift provider metrics collection enabled")
	}

	// Кэш коллекции смен — источник истины остаётся за сервисом смен
	cache := shiftCache.NewCache()

	// Инициализируем контроллер состояния бронирования
	shiftSvc := shiftsService.NewService(provider, cache, log)

	// Прогреваем кэш; неудача не фатальна — лента перечитывает коллекцию сама
	warmupCtx, cancelWarmup := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.ShiftProvider.Timeout)*time.Second,
	)
	if _, err := shiftSvc.Refresh(warmupCtx); err != nil {
		log.Warn("Initial shift fetch failed, continuing without warm cache: %v", err)
	}
	cancelWarmup()

	// Инициализируем use cases
	getShiftFeedUseCase := getShiftFeedUC.NewUseCase(shiftSvc, log)

	// Инициализируем handlers
	getShiftFeed := getShiftFeedHandler.NewHandler(getShiftFeedUseCase, log)
	bookShift := bookShiftHandler.NewHandler(shiftSvc, log)
	cancelShift := cancelShiftHandler.NewHandler(shiftSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware + endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Лента смен: вкладка + фильтр по городу + счётчики городов
	api.HandleFunc("/shifts", getShiftFeed.Handle).Methods(http.MethodGet)

	// Бронирование смены
	api.HandleFunc("/shifts/{shiftId}/book", bookShift.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	api.HandleFunc("/shifts/{shiftId}/cancel", cancelShift.Handle).Methods(http.MethodPost)

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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
