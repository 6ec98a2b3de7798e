package main

import (
	"context"
	"log"

	_ "oficina_xpto/docs"
	"oficina_xpto/internal/adapter/http/routes"
	"oficina_xpto/internal/infrastructure/config"
	"oficina_xpto/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Oficina XPTO API
// @version         1.0
// @description     Workshop core: customers, service orders and budgets backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	l, err := logger.NewLogger(cfg.App)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = l.Sync() }()
	zap.ReplaceGlobals(l)

	if err := routes.Run(context.Background(), cfg, l); err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}
