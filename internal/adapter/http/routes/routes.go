package routes

import (
	"log"
	"net/http"
	"path/filepath"

	_ "checkout_gateway/docs" // This will be auto-generated
	"checkout_gateway/internal/adapter/http/handlers"
	"checkout_gateway/internal/infrastructure/config"
	"checkout_gateway/internal/infrastructure/payments"
	"checkout_gateway/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg := config.LoadConfig()

	provider := payments.NewPayPalProvider(cfg)
	checkoutUseCase := usecase.NewCheckoutUseCase(provider)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)

	router := NewRouter(cfg, checkoutHandler)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter assembles the gin engine. Config comes in explicitly so tests can
// point the static dir and provider base URL wherever they need.
func NewRouter(cfg *config.Config, checkoutHandler *handlers.CheckoutHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static checkout client
	index := filepath.Join(cfg.StaticDir, "index.html")
	router.GET("/", func(c *gin.Context) {
		c.File(index)
	})
	router.Static("/client", cfg.StaticDir)

	addPingRoutes(router)
	addCheckoutRoutes(router, checkoutHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
