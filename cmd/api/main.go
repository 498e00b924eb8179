package main

import (
	_ "printhub/docs"
	"printhub/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Printhub Order API
// @version         1.0
// @description     Order requests and client orders for the print shop, backed by DynamoDB or Postgres.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cli.Execute()
}
