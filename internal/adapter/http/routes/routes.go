package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/domain/services"
	"oficina_xpto/internal/infrastructure/config"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/messaging"
	"oficina_xpto/internal/infrastructure/metrics"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Customers     *handlers.CustomerHandler
	ServiceOrders *handlers.ServiceOrderHandler
	Budgets       *handlers.BudgetHandler
	Catalog       *handlers.CatalogHandler
}

// Run wires repositories, use cases and handlers and starts the server.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	h, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}

	if cfg.App.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(h, log)

	log.Info("starting http server", zap.Int("port", cfg.App.Port))
	if err := router.Run(":" + strconv.Itoa(cfg.App.Port)); err != nil {
		return fmt.Errorf("failed to startup the application: %w", err)
	}
	return nil
}

// NewRouter mounts /v1, /metrics and /swagger on a fresh engine.
func NewRouter(h Handlers, log *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCustomerRoutes(v1, h.Customers, h.ServiceOrders)
	addServiceOrderRoutes(v1, h.ServiceOrders, h.Budgets)
	addBudgetRoutes(v1, h.Budgets)
	addCatalogRoutes(v1, h.Catalog)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger) (Handlers, error) {
	budgetPolicy, err := cfg.BudgetPolicy()
	if err != nil {
		return Handlers{}, err
	}
	orderPolicy, err := cfg.ServiceOrderPolicy()
	if err != nil {
		return Handlers{}, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB, log)
	if err != nil {
		return Handlers{}, err
	}

	var publisher interfaces.IEventPublisher = messaging.NewLogEventPublisher(log)
	redisClient, err := messaging.NewRedisClient(ctx, cfg.Redis)
	switch {
	case err != nil:
		log.Warn("redis unavailable, domain events will only be logged", zap.Error(err))
	case redisClient != nil:
		publisher = messaging.NewRedisEventPublisher(redisClient, cfg.Redis.Channel, log)
	}

	collaborators := usecase.Collaborators{
		Publisher: publisher,
		Metrics:   metrics.New(prometheus.DefaultRegisterer),
		Logger:    log,
	}

	customerRepo := repository.NewCustomerDynamoRepository(ddb, cfg.DynamoDB.CustomersTable)
	orderRepo := repository.NewServiceOrderDynamoRepository(ddb, cfg.DynamoDB.ServiceOrdersTable)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.DynamoDB.BudgetsTable)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb, cfg.DynamoDB.CatalogTable)
	mechanicRepo := repository.NewMechanicDynamoRepository(ddb, cfg.DynamoDB.MechanicsTable)
	sequence := repository.NewOrderSequenceDynamo(ddb, cfg.DynamoDB.CountersTable)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, collaborators)
	orderUseCase := usecase.NewServiceOrderUseCase(usecase.ServiceOrderDeps{
		Orders:    orderRepo,
		Customers: customerRepo,
		Catalog:   catalogRepo,
		Mechanics: mechanicRepo,
		Sequence:  sequence,
		Pricing:   services.NewPricingService(),
	}, orderPolicy, collaborators)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, orderRepo, budgetPolicy, collaborators)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, mechanicRepo, collaborators)

	return Handlers{
		Customers:     handlers.NewCustomerHandler(customerUseCase, log),
		ServiceOrders: handlers.NewServiceOrderHandler(orderUseCase, log),
		Budgets:       handlers.NewBudgetHandler(budgetUseCase, log),
		Catalog:       handlers.NewCatalogHandler(catalogUseCase, log),
	}, nil
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

// requestLogger logs one line per request and propagates X-Request-ID.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("request completed", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request completed", fields...)
		default:
			log.Info("request completed", fields...)
		}
	}
}
