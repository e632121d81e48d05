package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/fekuna/omnipos-storefront-service/config"
	"github.com/fekuna/omnipos-storefront-service/internal/cart"
	cartH "github.com/fekuna/omnipos-storefront-service/internal/cart/handler"
	cartPubPkg "github.com/fekuna/omnipos-storefront-service/internal/cart/publisher"
	cartUCPkg "github.com/fekuna/omnipos-storefront-service/internal/cart/usecase"
	"github.com/fekuna/omnipos-storefront-service/internal/catalog"
	catalogH "github.com/fekuna/omnipos-storefront-service/internal/catalog/handler"
	catalogListenerPkg "github.com/fekuna/omnipos-storefront-service/internal/catalog/listener"
	catalogRepoPkg "github.com/fekuna/omnipos-storefront-service/internal/catalog/repository"
	catalogUCPkg "github.com/fekuna/omnipos-storefront-service/internal/catalog/usecase"
	"github.com/fekuna/omnipos-storefront-service/internal/gateway"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/broker"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/cache"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/i18n"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/logger"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/middleware"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/postgres"
	"github.com/fekuna/omnipos-storefront-service/internal/platform/search"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize i18n
	translator, err := i18n.New()
	if err != nil {
		appLogger.Fatal("Could not load locales", zap.Error(err))
	}

	// 4. Catalog source
	var repo catalog.Repository
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
		repo = catalogRepoPkg.NewPGRepository(db, cfg.Catalog.MerchantID)
	case config.CatalogSourceHTTP:
		repo = catalogRepoPkg.NewHTTPRepository(cfg.Catalog.URL, cfg.Catalog.Timeout)
	default:
		appLogger.Fatal("Unknown catalog source", zap.String("source", cfg.Catalog.Source))
	}

	// 5. Initialize Redis
	var rawCache catalog.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Redis, catalog cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			rawCache = redisClient
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 6. Initialize Elasticsearch
	var index catalog.SearchIndex
	if cfg.Elastic.Enabled {
		esClient, err := search.NewClient(&search.Config{
			Addresses: cfg.Elastic.Addresses,
			Username:  cfg.Elastic.Username,
			Password:  cfg.Elastic.Password,
		})
		if err != nil {
			appLogger.Warn("Could not connect to Elasticsearch, search falls back to memory", zap.Error(err))
		} else {
			index = esClient
			appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
		}
	}

	// 7. Initialize UseCases
	catalogUC := catalogUCPkg.NewCatalogUseCase(repo, rawCache, index, cfg.Catalog.CacheTTL, appLogger)

	var publisher cart.Publisher = cartPubPkg.NewLogPublisher(appLogger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.CartTopic,
		})
		defer producer.Close()
		publisher = cartPubPkg.NewKafkaPublisher(producer, appLogger)
		appLogger.Info("Connected to Kafka Producer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.CartTopic))

		consumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.CatalogTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer consumer.Close()
		appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.CatalogTopic))

		go catalogListenerPkg.NewCatalogListener(consumer, catalogUC, appLogger).Start(ctx)
	}

	cartUC := cartUCPkg.NewCartUseCase(catalogUC, publisher, translator, appLogger)

	// 8. Load the catalog once before serving
	loadCtx, loadCancel := context.WithTimeout(ctx, cfg.Catalog.Timeout+5*time.Second)
	if err := catalogUC.Load(loadCtx); err != nil {
		appLogger.Error("Initial catalog load failed", zap.String("source", repo.Name()), zap.Error(err))
	}
	loadCancel()

	// 9. Start gRPC Server
	port := withColon(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.RecoveryInterceptor(appLogger),
			middleware.ContextInterceptor(appLogger),
		),
	)
	catalogH.RegisterCatalogServiceServer(grpcServer, catalogH.NewCatalogHandler(catalogUC, appLogger))
	cartH.RegisterCartServiceServer(grpcServer, cartH.NewCartHandler(cartUC, appLogger))
	reflection.Register(grpcServer)

	appLogger.Info("Starting gRPC server", zap.String("port", port))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// 10. Start HTTP gateway
	httpServer := &http.Server{
		Addr:              withColon(cfg.Server.HTTPPort),
		Handler:           gateway.NewHandlers(catalogUC, cartUC, appLogger).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	appLogger.Info("Starting HTTP gateway", zap.String("addr", httpServer.Addr))
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve http", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("HTTP gateway shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	appLogger.Info("Server stopped")
}

func withColon(port string) string {
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
