package main

import (
	_ "lavajato/docs"
	"lavajato/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           JJ Lava-Jato API
// @version         1.0
// @description     Car wash service orders, expenses and daily reports backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-Id
// @description Identifier of the authenticated user performing the request.

func main() {
	routes.Run()
}
