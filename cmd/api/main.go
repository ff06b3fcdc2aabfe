package main

import (
	_ "checkout_gateway/docs"
	"checkout_gateway/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout Gateway API
// @version         1.0
// @description     Thin gateway brokering checkout operations against the payment provider's sandbox REST API.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
