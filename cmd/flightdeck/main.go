package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"flightdeck/cfg"
	"flightdeck/internal/booking"
	"flightdeck/internal/search"
	"flightdeck/pkg/amadeus"
	"flightdeck/pkg/cache"
	"flightdeck/pkg/idgen"
	"flightdeck/pkg/logger"

	_ "flightdeck/cmd/flightdeck/docs" // swagger docs

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// @title           Flightdeck API
// @version         1.0
// @description     API service for searching, filtering and booking flights.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	shutdownOtel, err := initOtel(context.Background(), &config.Observability, zlogger)
	if err != nil {
		log.Fatalf("failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOtel(ctx); err != nil {
			log.Printf("failed to shutdown OpenTelemetry: %v", err)
		}
	}()

	// ============
	// Cache
	// ============
	redisAddr := config.Redis.Host + ":" + config.Redis.Port
	redis := cache.NewRedisCache(redisAddr, config.Redis.Password)

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: 5 * time.Second,
	}
	amadeusClient := amadeus.NewClient(httpClient, amadeus.Config{
		BaseURL:      config.Amadeus.BaseURL,
		ClientID:     config.Amadeus.ClientID,
		ClientSecret: config.Amadeus.ClientSecret,
		Currency:     config.Amadeus.Currency,
	}, zlogger)

	// ============
	// ID generator
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// Internal Service
	// ============
	searchSvc := search.NewService(amadeusClient, redis, config.CacheTTLMinutes, zlogger)
	searchHandler := search.NewHandler(searchSvc)
	bookingSvc := booking.NewService(redis, ids, config.BookingTTLHours, zlogger)
	bookingHandler := booking.NewHandler(bookingSvc)

	// ============
	// HTTP
	// ============
	r := gin.Default()
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(TraceLoggerMiddleware(zlogger))

	searchHandler.RegisterRoutes(r)
	bookingHandler.RegisterRoutes(r)
	initSwagger(r)

	addr := fmt.Sprintf(":%s", config.AppPort)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}

// TraceLoggerMiddleware extracts trace_id and span_id from the request context and attaches it to logger
func TraceLoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			traceID := span.SpanContext().TraceID().String()
			spanID := span.SpanContext().SpanID().String()

			c.Set("trace_id", traceID)
			c.Set("span_id", spanID)

			log.Info("incoming request",
				logger.Field{Key: "trace_id", Value: traceID},
				logger.Field{Key: "span_id", Value: spanID},
				logger.Field{Key: "method", Value: c.Request.Method},
				logger.Field{Key: "path", Value: c.Request.URL.Path},
			)
		}

		c.Next()

		if span.SpanContext().IsValid() {
			traceID := span.SpanContext().TraceID().String()
			spanID := span.SpanContext().SpanID().String()

			log.Info("request completed",
				logger.Field{Key: "trace_id", Value: traceID},
				logger.Field{Key: "span_id", Value: spanID},
				logger.Field{Key: "status", Value: c.Writer.Status()},
				logger.Field{Key: "method", Value: c.Request.Method},
				logger.Field{Key: "path", Value: c.Request.URL.Path},
			)
		}
	}
}

// initOtel initializes OpenTelemetry tracer and meter with OTLP exporter
func initOtel(ctx context.Context, config *cfg.ObservabilityConfig, log logger.Logger) (func(context.Context) error, error) {
	conn, err := grpc.NewClient(
		config.OTLPEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection to collector: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	metricExporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.DeploymentEnvironment(config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	mp := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(metricExporter)),
		metric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	log.Info("OpenTelemetry initialized - sending to OTLP collector",
		logger.Field{Key: "otlp_endpoint", Value: config.OTLPEndpoint},
	)

	shutdown := func(ctx context.Context) error {
		var errs []error

		if err := tp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown failed: %w", err))
		}

		if err := mp.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown failed: %w", err))
		}

		if len(errs) > 0 {
			return fmt.Errorf("otel shutdown errors: %v", errs)
		}
		return nil
	}

	return shutdown, nil
}
