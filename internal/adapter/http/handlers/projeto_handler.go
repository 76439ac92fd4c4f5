package handlers

import (
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type ProjetoHandler struct {
	repo interfaces.IProjetoRepository
}

func NewProjetoHandler(repo interfaces.IProjetoRepository) *ProjetoHandler {
	return &ProjetoHandler{repo: repo}
}

// List serves the tenant listing, ?clienteId= and ?propriedadeId=.
func (h *ProjetoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := TenantID(c)

	var (
		projetos []entities.Projeto
		err      error
	)
	switch {
	case c.Query("clienteId") != "":
		projetos, err = h.repo.ListByCliente(ctx, tenantID, c.Query("clienteId"))
	case c.Query("propriedadeId") != "":
		projetos, err = h.repo.ListByPropriedade(ctx, tenantID, c.Query("propriedadeId"))
	default:
		projetos, err = h.repo.List(ctx, tenantID)
	}
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, projetos)
}

func (h *ProjetoHandler) Get(c *gin.Context) {
	projeto, err := h.repo.GetByID(c.Request.Context(), TenantID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if projeto == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, projeto)
}

func (h *ProjetoHandler) Create(c *gin.Context) {
	var payload entities.Projeto
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadPayload(c)
		return
	}

	created, err := h.repo.Create(c.Request.Context(), TenantID(c), payload)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjetoHandler) Update(c *gin.Context) {
	var up entities.ProjetoUpdate
	if err := c.ShouldBindJSON(&up); err != nil {
		respondBadPayload(c)
		return
	}

	updated, err := h.repo.Update(c.Request.Context(), TenantID(c), c.Param("id"), up)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if updated == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProjetoHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), TenantID(c), c.Param("id")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
