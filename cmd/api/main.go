package main

import (
	"log"

	_ "os_financeiro/docs"
	"os_financeiro/internal/adapter/http/routes"
	"os_financeiro/internal/config"
	"os_financeiro/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           OS Financeiro API
// @version         1.0
// @description     Financial tab of service orders: line items, cascading discounts, payment split and receivable installments, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg := config.Load()

	l, err := logger.Init(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = l.Sync() }()

	if err := routes.Run(cfg); err != nil {
		zap.S().Fatalw("[app][main] server stopped", "err", err)
	}
}
