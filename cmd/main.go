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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addCartItemHandler "github.com/m04kA/SMC-CartService/internal/api/handlers/add_cart_item"
	cartEventsHandler "github.com/m04kA/SMC-CartService/internal/api/handlers/cart_events"
	getCartHandler "github.com/m04kA/SMC-CartService/internal/api/handlers/get_cart"
	getStagedCheckoutHandler "github.com/m04kA/SMC-CartService/internal/api/handlers/get_staged_checkout"
	prepareCheckoutHandler "github.com/m04kA/SMC-CartService/internal/api/handlers/prepare_checkout"
	removeCartItemsHandler "github.com/m04kA/SMC-CartService/internal/api/handlers/remove_cart_items"
	"github.com/m04kA/SMC-CartService/internal/api/middleware"
	"github.com/m04kA/SMC-CartService/internal/config"
	"github.com/m04kA/SMC-CartService/internal/infra/storage/kv"
	cartService "github.com/m04kA/SMC-CartService/internal/service/cart"
	"github.com/m04kA/SMC-CartService/internal/service/grouping"
	"github.com/m04kA/SMC-CartService/internal/service/leadtime"
	addCartItemUC "github.com/m04kA/SMC-CartService/internal/usecase/add_cart_item"
	getCartUC "github.com/m04kA/SMC-CartService/internal/usecase/get_cart"
	getStagedCheckoutUC "github.com/m04kA/SMC-CartService/internal/usecase/get_staged_checkout"
	prepareCheckoutUC "github.com/m04kA/SMC-CartService/internal/usecase/prepare_checkout"
	removeCartItemsUC "github.com/m04kA/SMC-CartService/internal/usecase/remove_cart_items"
	"github.com/m04kA/SMC-CartService/pkg/logger"
	"github.com/m04kA/SMC-CartService/pkg/metrics"
)

// cartStore хранилище корзины с проверкой соединения
type cartStore interface {
	cartService.Store
	Ping(ctx context.Context) error
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

	log.Info("Starting SMC-CartService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	location, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}

	// Подключаем хранилище корзины
	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		log.Fatal("Failed to open %s storage: %v", cfg.Storage.Driver, err)
	}
	defer closeStore()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := store.Ping(pingCtx); err != nil {
		cancelPing()
		log.Fatal("Failed to ping %s storage: %v", cfg.Storage.Driver, err)
	}
	cancelPing()
	log.Info("Cart storage ready (driver=%s, key_prefix=%q)", cfg.Storage.Driver, cfg.Storage.KeyPrefix)

	// Инициализируем сервисы
	cart := cartService.NewService(store, cfg.Storage.KeyPrefix, metricsCollector, log)
	engine := grouping.NewEngine(log)
	validator := leadtime.NewValidator(cfg.MinLeadMinutes(), location)
	watcher := cartService.NewWatcher(cart, store, cfg.PollInterval(), log)

	// Инициализируем use cases
	getCartUseCase := getCartUC.NewUseCase(cart, engine, validator, metricsCollector, log)
	addCartItemUseCase := addCartItemUC.NewUseCase(cart, log)
	removeCartItemsUseCase := removeCartItemsUC.NewUseCase(cart, log)
	prepareCheckoutUseCase := prepareCheckoutUC.NewUseCase(cart, engine, validator, metricsCollector, log)
	getStagedCheckoutUseCase := getStagedCheckoutUC.NewUseCase(cart, log)

	// Инициализируем handlers
	getCart := getCartHandler.NewHandler(getCartUseCase, log)
	addCartItem := addCartItemHandler.NewHandler(addCartItemUseCase, log)
	removeCartItems := removeCartItemsHandler.NewHandler(removeCartItemsUseCase, log)
	prepareCheckout := prepareCheckoutHandler.NewHandler(prepareCheckoutUseCase, log)
	getStagedCheckout := getStagedCheckoutHandler.NewHandler(getStagedCheckoutUseCase, log)
	cartEvents := cartEventsHandler.NewHandler(cart, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Корзина ---
	api.HandleFunc("/cart", getCart.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", addCartItem.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cart/items", removeCartItems.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/cart/events", cartEvents.Handle).Methods(http.MethodGet)

	// --- Оформление ---
	checkout := http.Handler(http.HandlerFunc(prepareCheckout.Handle))
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RPS,
			cfg.RateLimit.Burst,
			cfg.RateLimitIdleTimeout(),
			cfg.RateLimit.TrustForwardedFor,
		)
		checkout = limiter.Middleware(checkout)
		log.Info("Checkout rate limit enabled: rps=%.2f, burst=%d, trust_forwarded_for=%t",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustForwardedFor)
	}
	api.Handle("/cart/checkout", checkout).Methods(http.MethodPost)
	api.HandleFunc("/checkout/staged", getStagedCheckout.Handle).Methods(http.MethodGet)

	// Запускаем отслеживание изменений корзины
	watchCtx, stopWatcher := context.WithCancel(context.Background())
	watcherDone := make(chan struct{})
	go func() {
		defer close(watcherDone)
		watcher.Run(watchCtx)
	}()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
	// Открытые потоки /cart/events иначе задержат Shutdown до таймаута
	srv.RegisterOnShutdown(cart.Close)

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

	stopWatcher()
	<-watcherDone
	log.Info("Cart watcher stopped")

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

// openStore создает хранилище по cfg.Storage.Driver
func openStore(cfg *config.Config, log *logger.Logger) (cartStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		store := kv.NewRedisStore(kv.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB))
		log.Info("Using Redis storage at %s (db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
		return store, func() { _ = store.Close() }, nil

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		table := cfg.Database.Table
		if table == "" {
			table = kv.DefaultTable
		}
		store := kv.NewPostgresStore(db, table)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		log.Info("Using PostgreSQL storage (host=%s, port=%d, db=%s, table=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, table)
		return store, func() { _ = db.Close() }, nil

	default:
		log.Info("Using in-memory storage, cart is lost on restart")
		return kv.NewMemoryStore(), func() {}, nil
	}
}
