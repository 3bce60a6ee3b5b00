package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "lavajato/docs" // This will be auto-generated
	"lavajato/internal/adapter/http/handlers"
	"lavajato/internal/adapter/persistence/repository"
	"lavajato/internal/infrastructure/database"
	"lavajato/internal/infrastructure/logger"
	"lavajato/internal/infrastructure/objectstorage"
	"lavajato/internal/infrastructure/payments"
	"lavajato/internal/usecase"
	"lavajato/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	zlog, err := logger.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	setMiddlewares(zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(zlog)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		zlog.Fatal("failed to startup the application", zap.Error(err))
	}
}

func getRoutes(zlog *zap.Logger) {
	ctx := context.Background()

	cfg, err := database.LoadAWSConfig(ctx)
	if err != nil {
		zlog.Fatal("failed loading aws config", zap.Error(err))
	}
	ddb := database.NewDynamoDBClient(cfg)
	s3Client := database.NewS3Client(cfg)

	orderRepo := repository.NewServiceOrderDynamoRepository(ddb)
	expenseRepo := repository.NewExpenseDynamoRepository(ddb)
	invoiceStorage := objectstorage.NewS3InvoiceStorage(s3Client, cfg.Region)

	var pixGateway interfaces.IPixGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		zlog.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		pixGateway = mpGateway
	}

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, invoiceStorage, zlog)
	expenseUseCase := usecase.NewExpenseUseCase(expenseRepo, zlog)
	reportUseCase := usecase.NewReportUseCase(orderUseCase, expenseUseCase, os.Getenv("COMPANY_NAME"))
	pixUseCase := usecase.NewPixChargeUseCase(orderUseCase, pixGateway, zlog)

	// Warm the in-memory stores before taking traffic.
	if err := orderUseCase.Refresh(ctx); err != nil {
		zlog.Fatal("failed loading orders from dynamodb", zap.Error(err))
	}
	if err := expenseUseCase.Refresh(ctx); err != nil {
		zlog.Fatal("failed loading expenses from dynamodb", zap.Error(err))
	}

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase, pixUseCase)
	expenseHandler := handlers.NewExpenseHandler(expenseUseCase)
	pricingHandler := handlers.NewPricingHandler()
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCarwashRoutes(v1, orderHandler, expenseHandler, pricingHandler, reportHandler)
}

func setMiddlewares(zlog *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
