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

	addCartItemHandler "github.com/m04kA/Zonomo-CartService/internal/api/handlers/add_cart_item"
	clearCartHandler "github.com/m04kA/Zonomo-CartService/internal/api/handlers/clear_cart"
	createCheckoutSessionHandler "github.com/m04kA/Zonomo-CartService/internal/api/handlers/create_checkout_session"
	getAvailableSlotsHandler "github.com/m04kA/Zonomo-CartService/internal/api/handlers/get_available_slots"
	getCartHandler "github.com/m04kA/Zonomo-CartService/internal/api/handlers/get_cart"
	getOrderStatusHandler "github.com/m04kA/Zonomo-CartService/internal/api/handlers/get_order_status"
	removeCartItemHandler "github.com/m04kA/Zonomo-CartService/internal/api/handlers/remove_cart_item"
	"github.com/m04kA/Zonomo-CartService/internal/api/middleware"
	"github.com/m04kA/Zonomo-CartService/internal/config"
	"github.com/m04kA/Zonomo-CartService/internal/infra/storage/kv"
	orderRepo "github.com/m04kA/Zonomo-CartService/internal/infra/storage/order"
	productRepo "github.com/m04kA/Zonomo-CartService/internal/infra/storage/product"
	"github.com/m04kA/Zonomo-CartService/internal/integrations/payment"
	cartsService "github.com/m04kA/Zonomo-CartService/internal/service/carts"
	createCheckoutUC "github.com/m04kA/Zonomo-CartService/internal/usecase/create_checkout"
	getAvailableSlotsUC "github.com/m04kA/Zonomo-CartService/internal/usecase/get_available_slots"
	getOrderStatusUC "github.com/m04kA/Zonomo-CartService/internal/usecase/get_order_status"
	"github.com/m04kA/Zonomo-CartService/pkg/logger"
	"github.com/m04kA/Zonomo-CartService/pkg/metrics"
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

	log.Info("Starting Zonomo-CartService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Хранилище корзин
	var redisClient *redis.Client
	kvOpts := kv.Options{
		Backend: cfg.Cart.Backend,
		DB:      db,
		TTL:     time.Duration(cfg.Cart.TTLHours) * time.Hour,
	}

	if cfg.Cart.Backend == config.CartBackendRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
		}
		kvOpts.Redis = redisClient
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	}

	cartStorage, err := kv.New(kvOpts)
	if err != nil {
		log.Fatal("Failed to initialize cart storage: %v", err)
	}
	log.Info("Cart storage backend: %s (key prefix=%s)", cfg.Cart.Backend, cfg.Cart.StorageKey)

	location, err := cfg.Cart.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Cart.Timezone, err)
	}
	log.Info("Booking timezone: %s", location)

	// Инициализируем интеграционных клиентов
	paymentClient := payment.NewClient(
		cfg.Payment.SecretKey,
		cfg.Payment.SuccessURL,
		cfg.Payment.CancelURL,
		log,
	)
	log.Info("Payment client initialized (currency=%s, fee=%.2f)", cfg.Payment.Currency, cfg.Payment.TransactionFee)

	// Инициализируем репозитории
	productRepository := productRepo.NewRepository(db)
	orderRepository := orderRepo.NewRepository(db)

	// Инициализируем сервисы
	cartSvc := cartsService.NewService(
		cartStorage,
		productRepository,
		metricsCollector,
		cartsService.Config{
			KeyPrefix: cfg.Cart.StorageKey,
			Fee:       cfg.Payment.TransactionFee,
			Currency:  cfg.Payment.Currency,
			MaxItems:  cfg.Cart.MaxItems,
			Location:  location,
		},
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		productRepository,
		metricsCollector,
		log,
	)

	createCheckoutUseCase := createCheckoutUC.NewUseCase(
		cartSvc,
		productRepository,
		orderRepository,
		paymentClient,
		metricsCollector,
		createCheckoutUC.Config{
			Fee:      cfg.Payment.TransactionFee,
			Currency: cfg.Payment.Currency,
		},
		log,
	)

	getOrderStatusUseCase := getOrderStatusUC.NewUseCase(orderRepository, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	getCart := getCartHandler.NewHandler(cartSvc, log)
	addCartItem := addCartItemHandler.NewHandler(cartSvc, log)
	removeCartItem := removeCartItemHandler.NewHandler(cartSvc, log)
	clearCart := clearCartHandler.NewHandler(cartSvc, log)
	createCheckoutSession := createCheckoutSessionHandler.NewHandler(createCheckoutUseCase, log)
	getOrderStatus := getOrderStatusHandler.NewHandler(getOrderStatusUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Доступные слоты услуги на дату
	api.HandleFunc("/products/{productId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Статус оплаты заказа (опрашивается со страницы thank-you)
	api.HandleFunc("/orders/{orderId}/status", getOrderStatus.Handle).Methods(http.MethodGet)

	// ============================================================
	// SESSION ROUTES (X-Session-ID header)
	// ============================================================

	session := api.PathPrefix("").Subrouter()
	session.Use(middleware.Session)

	// --- Корзина ---
	session.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	session.HandleFunc("/cart", clearCart.Handle).Methods(http.MethodDelete)
	session.HandleFunc("/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	session.HandleFunc("/cart/items", removeCartItem.Handle).Methods(http.MethodDelete)

	// --- Оплата ---
	session.HandleFunc("/checkout/sessions", createCheckoutSession.Handle).Methods(http.MethodPost)

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
