package routes

import (
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAssinaturas = "/assinaturas"

func addBillingRoutes(rg *gin.RouterGroup, assinaturaHandler *handlers.AssinaturaHandler) {
	assinaturas := rg.Group(PathAssinaturas)
	{
		assinaturas.POST("", assinaturaHandler.Create)
	}
}
