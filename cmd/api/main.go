package main

import (
	_ "phicoffee/docs"
	"phicoffee/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Phicoffee Orders API
// @version         1.0
// @description     Campus coffee ordering service (orders + invoices + feedback) backed by Google Sheets.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
