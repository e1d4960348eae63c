package main

import (
	_ "paypal_connector/docs"
	"paypal_connector/internal/adapter/http/routes"
	"paypal_connector/internal/infrastructure/config"
	"paypal_connector/internal/infrastructure/logging"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

// @title           PayPal Connector API
// @version         1.0
// @description     PayPal payments connector: create, execute and patch payments, with an audit log of updates in DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	logging.Setup(cfg.LogLevel)
	routes.Run(cfg)
}
