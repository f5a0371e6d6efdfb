package main

import (
	_ "driveway_xpto/docs"
	"driveway_xpto/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Driveway Service API
// @version         1.0
// @description     Driveway contractor workflow: clients, requests, quotes, work orders, bills and reports.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	cli.Execute()
}
