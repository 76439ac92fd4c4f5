package handlers

import (
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type OportunidadeHandler struct {
	repo interfaces.IOportunidadeRepository
}

func NewOportunidadeHandler(repo interfaces.IOportunidadeRepository) *OportunidadeHandler {
	return &OportunidadeHandler{repo: repo}
}

// List serves the tenant listing, ?clienteId= and ?status= (pipeline board).
func (h *OportunidadeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := TenantID(c)

	var (
		oportunidades []entities.Oportunidade
		err           error
	)
	switch {
	case c.Query("clienteId") != "":
		oportunidades, err = h.repo.ListByCliente(ctx, tenantID, c.Query("clienteId"))
	case c.Query("status") != "":
		oportunidades, err = h.repo.ListByStatus(ctx, tenantID, entities.StatusOportunidade(c.Query("status")))
	default:
		oportunidades, err = h.repo.List(ctx, tenantID)
	}
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, oportunidades)
}

func (h *OportunidadeHandler) Get(c *gin.Context) {
	oportunidade, err := h.repo.GetByID(c.Request.Context(), TenantID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if oportunidade == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, oportunidade)
}

func (h *OportunidadeHandler) Create(c *gin.Context) {
	var payload entities.Oportunidade
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

func (h *OportunidadeHandler) Update(c *gin.Context) {
	var up entities.OportunidadeUpdate
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

func (h *OportunidadeHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), TenantID(c), c.Param("id")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
