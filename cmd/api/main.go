package main

import (
	_ "github.com/agro-trimobe/rural-credit-app-sub000/docs"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Rural Credit CRM API
// @version         1.0
// @description     Multi-tenant CRM data service for rural credit loan officers, backed by a single DynamoDB table.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey TenantID
// @in header
// @name X-Tenant-ID
// @description Tenant identifier scoping every data route.

func main() {
	routes.Run()
}
