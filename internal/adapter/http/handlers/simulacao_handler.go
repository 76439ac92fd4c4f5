package handlers

import (
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type SimulacaoHandler struct {
	repo interfaces.ISimulacaoRepository
}

func NewSimulacaoHandler(repo interfaces.ISimulacaoRepository) *SimulacaoHandler {
	return &SimulacaoHandler{repo: repo}
}

// List serves the tenant listing, ?clienteId= and ?linhaCredito=.
func (h *SimulacaoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := TenantID(c)

	var (
		simulacoes []entities.Simulacao
		err        error
	)
	switch {
	case c.Query("clienteId") != "":
		simulacoes, err = h.repo.ListByCliente(ctx, tenantID, c.Query("clienteId"))
	case c.Query("linhaCredito") != "":
		simulacoes, err = h.repo.ListByLinhaCredito(ctx, tenantID, c.Query("linhaCredito"))
	default:
		simulacoes, err = h.repo.List(ctx, tenantID)
	}
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, simulacoes)
}

func (h *SimulacaoHandler) Get(c *gin.Context) {
	simulacao, err := h.repo.GetByID(c.Request.Context(), TenantID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if simulacao == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, simulacao)
}

func (h *SimulacaoHandler) Create(c *gin.Context) {
	var payload entities.Simulacao
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

func (h *SimulacaoHandler) Update(c *gin.Context) {
	var up entities.SimulacaoUpdate
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

func (h *SimulacaoHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), TenantID(c), c.Param("id")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
