package routes

import (
	"context"
	"log"

	_ "kampung_chill/docs" // This will be auto-generated
	"kampung_chill/internal/adapter/http/handlers"
	repository2 "kampung_chill/internal/adapter/persistence/repository"
	"kampung_chill/internal/config"
	"kampung_chill/internal/infrastructure/database"
	"kampung_chill/internal/infrastructure/notify"
	"kampung_chill/internal/infrastructure/recommend"
	"kampung_chill/internal/infrastructure/syncfeed"
	"kampung_chill/internal/usecase"
	"kampung_chill/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg *config.Config, logger *logrus.Logger) {
	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, logger)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config, logger *logrus.Logger) {
	ddb := database.ConnectDynamoDB(logger)
	stateRepo := repository2.NewShopStateDynamoRepository(ddb)

	var feed interfaces.IChangeFeed
	if rdb := database.ConnectRedis(cfg.RedisAddr, logger); rdb != nil {
		feed = syncfeed.NewRedisChangeFeed(rdb, cfg.SyncChannel, logger)
	} else {
		logger.Warn("[shop][routes] redis not configured, replicas will not sync")
	}

	notifier := notify.NewWebhookNotifier(cfg.OrderWebhookURL, logger)

	shopUseCase, err := usecase.NewShopUseCase(context.Background(), stateRepo, feed, notifier, logger)
	if err != nil {
		log.Fatalf("Failed to hydrate shop state: %v", err.Error())
	}

	recommender := recommend.NewGeminiGateway(cfg.GeminiAPIKey, logger)

	shopHandler := handlers.NewShopHandler(shopUseCase, recommender, logger)
	orderHandler := handlers.NewOrderHandler(shopUseCase, logger)
	dashboardHandler := handlers.NewDashboardHandler(shopUseCase, logger)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, shopHandler, orderHandler)

	dashboard := v1.Group("/dashboard", staffGate(cfg.StaffPasscode))
	addDashboardRoutes(dashboard, dashboardHandler)
}

func setMiddlewares(logger *logrus.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Errorf("[shop][routes] recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
