package routes

import (
	"net/http"
	"strconv"
	"time"

	_ "paypal_connector/docs" // This will be auto-generated
	"paypal_connector/internal/adapter/http/handlers"
	"paypal_connector/internal/adapter/persistence/repository"
	"paypal_connector/internal/infrastructure/config"
	"paypal_connector/internal/infrastructure/database"
	"paypal_connector/internal/infrastructure/logging"
	"paypal_connector/internal/infrastructure/metrics"
	"paypal_connector/internal/infrastructure/payments"
	"paypal_connector/internal/usecase"
	"paypal_connector/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var log = logging.Subsystem("http")

// Run will start the server
func Run(cfg config.Config) {
	router := NewRouter(newPaymentHandler(cfg, prometheus.DefaultRegisterer), promhttp.Handler())

	err := router.Run(":" + strconv.Itoa(cfg.HTTPPort))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter registers every route on a fresh engine.
func NewRouter(paymentHandler *handlers.PaymentHandler, metricsHandler http.Handler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metricsHandler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
	return router
}

func newPaymentHandler(cfg config.Config, reg prometheus.Registerer) *handlers.PaymentHandler {
	ddb := database.ConnectDynamoDB(cfg)
	updateRepo := repository.NewPaymentUpdateDynamoRepository(ddb, cfg.PaymentUpdatesTable)

	var paymentGateway interfaces.IPaymentGateway
	ppGateway, err := payments.NewPayPalGateway(payments.PayPalGatewayConfig{
		BaseURL:        cfg.PayPalBaseURL(),
		ClientID:       cfg.PayPalClientID,
		ClientSecret:   cfg.PayPalClientSecret,
		AcceptLanguage: cfg.PayPalAcceptLanguage,
		KeepAlive:      cfg.PayPalKeepAlive,
		Mock:           cfg.PaymentGatewayMock,
		Metrics:        metrics.NewOutbound(reg),
	})
	if err != nil {
		log.Warnf("PayPal gateway not configured: %v", err)
	} else {
		paymentGateway = ppGateway
	}

	paymentUseCase := usecase.NewPaymentUpdateUseCase(updateRepo, paymentGateway)
	return handlers.NewPaymentHandler(paymentUseCase)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}
