package routes

import (
	"context"
	"errors"
	"net/http"

	_ "os_financeiro/docs"
	request "os_financeiro/internal/adapter/http/dto/request"
	"os_financeiro/internal/adapter/http/handlers"
	"os_financeiro/internal/adapter/http/middleware"
	"os_financeiro/internal/adapter/persistence/repository"
	"os_financeiro/internal/config"
	"os_financeiro/internal/infrastructure/database"
	"os_financeiro/internal/infrastructure/payments"
	"os_financeiro/internal/usecase"
	"os_financeiro/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// ErrMissingJWTSecret stops the server from starting with an unverifiable
// financial gate.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Run wires repositories, use cases and handlers and starts the server.
func Run(cfg *config.Config) error {
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.AWS)
	if err != nil {
		return err
	}

	router, err := NewRouter(cfg, ddb)
	if err != nil {
		return err
	}
	zap.S().Infow("[app][routes] listening", "port", cfg.App.Port)
	return router.Run(":" + cfg.App.Port)
}

// NewRouter builds the gin engine. ddb may be nil in tests that never reach a
// repository.
func NewRouter(cfg *config.Config, ddb *dynamodb.Client) (*gin.Engine, error) {
	if cfg.Auth.JWTSecret == "" {
		zap.S().Errorw("[app][routes] JWT_SECRET not set; refusing to start")
		return nil, ErrMissingJWTSecret
	}
	gin.SetMode(cfg.App.GinMode)
	request.RegisterValidators()

	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serviceCallRepo := repository.NewServiceCallDynamoRepository(ddb, cfg.Tables.ServiceCalls)
	lineItemRepo := repository.NewLineItemDynamoRepository(ddb, cfg.Tables.LineItems)
	transactionRepo := repository.NewTransactionDynamoRepository(ddb, cfg.Tables.Transactions, cfg.Tables.ServiceCalls)
	productCatalog := repository.NewProductDynamoCatalog(ddb, cfg.Tables.Products)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		zap.S().Warnw("[app][routes] mercado pago gateway not configured; charges disabled", "err", err)
	} else {
		paymentGateway = mpGateway
	}

	financialUseCase := usecase.NewFinancialUseCase(serviceCallRepo, lineItemRepo, transactionRepo)
	lineItemUseCase := usecase.NewLineItemUseCase(lineItemRepo, serviceCallRepo, productCatalog)
	installmentUseCase := usecase.NewInstallmentUseCase(transactionRepo, serviceCallRepo, paymentGateway)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFinanceiroRoutes(v1, middleware.RequireFinancialAccess(cfg.Auth.JWTSecret), financeiroHandlers{
		financial:    handlers.NewFinancialHandler(financialUseCase),
		lineItems:    handlers.NewLineItemHandler(lineItemUseCase),
		installments: handlers.NewInstallmentHandler(installmentUseCase),
		presets:      handlers.NewPresetHandler(),
	})
	return router, nil
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zap.S().Errorw("[app][routes] recovered from panic", "path", c.FullPath(), "panic", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.CORS(cfg.CORS))
}
