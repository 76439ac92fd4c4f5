package routes

import (
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

type crmHandlers struct {
	clientes      *handlers.ClienteHandler
	propriedades  *handlers.PropriedadeHandler
	projetos      *handlers.ProjetoHandler
	documentos    *handlers.DocumentoHandler
	interacoes    *handlers.InteracaoHandler
	oportunidades *handlers.OportunidadeHandler
	visitas       *handlers.VisitaHandler
	simulacoes    *handlers.SimulacaoHandler
}

// crud wires the uniform route shape every entity shares.
type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func addCrmRoutes(rg *gin.RouterGroup, h crmHandlers) {
	byPath := map[string]crud{
		"/clientes":      h.clientes,
		"/propriedades":  h.propriedades,
		"/projetos":      h.projetos,
		"/documentos":    h.documentos,
		"/interacoes":    h.interacoes,
		"/oportunidades": h.oportunidades,
		"/visitas":       h.visitas,
		"/simulacoes":    h.simulacoes,
	}
	for path, handler := range byPath {
		g := rg.Group(path)
		{
			g.GET("", handler.List)
			g.POST("", handler.Create)
			g.GET("/:id", handler.Get)
			g.PUT("/:id", handler.Update)
			g.DELETE("/:id", handler.Delete)
		}
	}
}
