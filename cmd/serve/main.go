// Package classification TradeX Backend Service.
//
// Marketplace backend serving shops, events and products
//
// Terms Of Service:
//
// there are no TOS at this moment, use at your own risk we take no responsibility
//
//    Version: 0.1.0
//    License: TODO
//    Contact: https://github.com/Akash4693/TradeX-backend
//
//    Consumes:
//      - application/json
//
//    Produces:
//      - application/json
//
//    SecurityDefinitions:
//      oauth2:
//        type: oauth2
//        tokenUrl: /not-valid--endpoint-is-served-from-the-account-service
//        refreshUrl: /not-valid--endpoint-is-served-from-the-account-service
//        flow: password
// swagger:meta
package main

import (
	"context"
	"fmt"
	stdlog "log"
	"log/slog"
	"os"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/Akash4693/TradeX-backend/internal/handler"
	"github.com/Akash4693/TradeX-backend/internal/log"
	"github.com/Akash4693/TradeX-backend/internal/middleware"
	"github.com/Akash4693/TradeX-backend/internal/server"
	"github.com/Akash4693/TradeX-backend/pkg/assetstore"
	"github.com/Akash4693/TradeX-backend/pkg/config"
	"github.com/Akash4693/TradeX-backend/pkg/event"
	"github.com/Akash4693/TradeX-backend/pkg/product"
	"github.com/Akash4693/TradeX-backend/pkg/queue"
	"github.com/Akash4693/TradeX-backend/pkg/shop"
	"github.com/Akash4693/TradeX-backend/pkg/storage"
)

func main() {
	if err := run(); err != nil {
		stdlog.Fatal(err)
	}
}

func run() error {
	logger := slog.New(log.New(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(logger)

	cfg := config.ProvideConfig()

	if err := handler.RegisterValidation(); err != nil {
		return fmt.Errorf("failed to register validations: %v", err)
	}

	tracerProvider, err := setupTracing(cfg.Tracing.JaegerCollectorURL)
	if err != nil {
		return err
	}
	defer func() {
		_ = tracerProvider.Shutdown(context.Background())
	}()

	db, err := storage.NewDatabase(logger, cfg.Postgresql)
	if err != nil {
		return err
	}

	redisClient, err := storage.NewRedis(cfg.Redis.Host, cfg.Redis.Port)
	if err != nil {
		return err
	}
	cache := storage.NewCache(logger, redisClient)

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(), awsConfig.WithRegion(cfg.AssetStore.Region))
	if err != nil {
		return fmt.Errorf("failed to load AWS configuration: %v", err)
	}
	s3Client := s3.NewFromConfig(awsCfg)
	uploader := manager.NewUploader(s3Client)
	assets := assetstore.NewS3Store(logger, assetstore.Config{
		Bucket:    cfg.AssetStore.Bucket,
		Folder:    cfg.AssetStore.Folder,
		PublicURL: cfg.AssetStore.PublicURL,
	}, s3Client, uploader)

	connection, channel, err := queue.Connect(cfg.RabbitMq.GetUrl(), cfg.RabbitMq.Exchange)
	if err != nil {
		return err
	}
	defer func() {
		_ = channel.Close()
		_ = connection.Close()
	}()
	publisher := queue.NewPublisher(logger, channel, cfg.RabbitMq.Exchange)

	shopRepository := shop.NewRepository(db)
	shopService := shop.NewService(shopRepository)
	shopHandler := shop.NewHandler(shopService)

	eventRepository := event.NewRepository(db)
	eventService := event.NewService(logger, eventRepository, shopService, assets, cache, publisher)
	eventHandler := event.NewHandler(eventService)

	productRepository := product.NewRepository(db)
	productService := product.NewService(logger, productRepository, shopService, assets)
	productHandler := product.NewHandler(productService)

	publicKey, err := cfg.Authentication.GetPublicKey()
	if err != nil {
		return err
	}
	authentication := middleware.NewAuthentication(logger, publicKey)
	authorization := middleware.NewAuthorization(logger)

	r := server.GetEngine(logger, cfg.BasePath, authentication, authorization, eventHandler, productHandler, shopHandler)
	return r.Run()
}

// setupTracing registers a global tracer provider exporting to the Jaeger
// collector. Spans come from the gin middleware and the gorm plugin.
func setupTracing(collectorURL string) (*sdktrace.TracerProvider, error) {
	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(collectorURL)))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %v", err)
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String("tradex-backend"),
		)),
	)
	otel.SetTracerProvider(tracerProvider)

	return tracerProvider, nil
}
