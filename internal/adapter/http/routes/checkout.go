package routes

import (
	"checkout_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI    = "/api"
	PathOrders = "/orders"
)

func addCheckoutRoutes(router *gin.Engine, checkoutHandler *handlers.CheckoutHandler) {
	api := router.Group(PathAPI)
	{
		api.POST("/token", checkoutHandler.GenerateClientToken)
		api.POST("/orders", checkoutHandler.CreateOrder)
		api.POST("/orders/:orderID/capture", checkoutHandler.CaptureOrder)
		api.POST("/orders/:orderID/authorize", checkoutHandler.AuthorizeOrder)
	}

	// Authorization capture hangs off /orders without the /api prefix. The
	// browser client calls it at this path, so it stays here.
	orders := router.Group(PathOrders)
	{
		orders.POST("/:authorizationID/captureAuthorize", checkoutHandler.CaptureAuthorization)
	}
}
