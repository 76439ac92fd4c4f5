package handlers

import (
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type PropriedadeHandler struct {
	repo interfaces.IPropriedadeRepository
}

func NewPropriedadeHandler(repo interfaces.IPropriedadeRepository) *PropriedadeHandler {
	return &PropriedadeHandler{repo: repo}
}

// List serves the tenant listing, ?clienteId= (by owner) and ?municipio=.
func (h *PropriedadeHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := TenantID(c)

	var (
		propriedades []entities.Propriedade
		err          error
	)
	switch {
	case c.Query("clienteId") != "":
		propriedades, err = h.repo.ListByCliente(ctx, tenantID, c.Query("clienteId"))
	case c.Query("municipio") != "":
		propriedades, err = h.repo.ListByMunicipio(ctx, tenantID, c.Query("municipio"))
	default:
		propriedades, err = h.repo.List(ctx, tenantID)
	}
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, propriedades)
}

func (h *PropriedadeHandler) Get(c *gin.Context) {
	propriedade, err := h.repo.GetByID(c.Request.Context(), TenantID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if propriedade == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, propriedade)
}

func (h *PropriedadeHandler) Create(c *gin.Context) {
	var payload entities.Propriedade
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

func (h *PropriedadeHandler) Update(c *gin.Context) {
	var up entities.PropriedadeUpdate
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

func (h *PropriedadeHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), TenantID(c), c.Param("id")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
