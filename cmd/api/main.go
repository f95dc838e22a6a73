package main

import (
	_ "kampung_chill/docs"
	"kampung_chill/internal/adapter/http/routes"
	"kampung_chill/internal/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           Kampung Chill Shop API
// @version         1.0
// @description     Frozen-treat storefront (catalog, orders, staff dashboard) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey StaffToken
// @in header
// @name X-Staff-Token
// @description Shared staff passcode for the dashboard routes.

func main() {
	cfg := config.LoadConfig()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	routes.Run(cfg, logger)
}
