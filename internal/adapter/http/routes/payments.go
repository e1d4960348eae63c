package routes

import (
	"paypal_connector/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.POST("/:payment_id/execute", paymentHandler.ExecutePayment)

		payments.PATCH("/:payment_id", paymentHandler.UpdatePayment)
		payments.PATCH("/:payment_id/payer", paymentHandler.UpdatePayerInfo)
		payments.PATCH("/:payment_id/shipping-address", paymentHandler.UpdateShippingAddress)
		payments.PATCH("/:payment_id/amount", paymentHandler.UpdateAmount)
		payments.GET("/:payment_id/updates", paymentHandler.ListUpdates)
	}
}
