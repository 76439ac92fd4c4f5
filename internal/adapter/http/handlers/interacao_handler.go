package handlers

import (
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type InteracaoHandler struct {
	repo interfaces.IInteracaoRepository
}

func NewInteracaoHandler(repo interfaces.IInteracaoRepository) *InteracaoHandler {
	return &InteracaoHandler{repo: repo}
}

// List serves the tenant listing, ?clienteId= and ?data= (2006-01-02).
func (h *InteracaoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := TenantID(c)

	var (
		interacoes []entities.Interacao
		err        error
	)
	switch {
	case c.Query("clienteId") != "":
		interacoes, err = h.repo.ListByCliente(ctx, tenantID, c.Query("clienteId"))
	case c.Query("data") != "":
		interacoes, err = h.repo.ListByData(ctx, tenantID, c.Query("data"))
	default:
		interacoes, err = h.repo.List(ctx, tenantID)
	}
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, interacoes)
}

func (h *InteracaoHandler) Get(c *gin.Context) {
	interacao, err := h.repo.GetByID(c.Request.Context(), TenantID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if interacao == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, interacao)
}

func (h *InteracaoHandler) Create(c *gin.Context) {
	var payload entities.Interacao
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

func (h *InteracaoHandler) Update(c *gin.Context) {
	var up entities.InteracaoUpdate
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

func (h *InteracaoHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), TenantID(c), c.Param("id")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
