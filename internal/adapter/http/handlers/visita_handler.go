package handlers

import (
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

type VisitaHandler struct {
	repo interfaces.IVisitaRepository
}

func NewVisitaHandler(repo interfaces.IVisitaRepository) *VisitaHandler {
	return &VisitaHandler{repo: repo}
}

// List serves the tenant listing and ?clienteId=.
func (h *VisitaHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := TenantID(c)

	var (
		visitas []entities.Visita
		err     error
	)
	if clienteID := c.Query("clienteId"); clienteID != "" {
		visitas, err = h.repo.ListByCliente(ctx, tenantID, clienteID)
	} else {
		visitas, err = h.repo.List(ctx, tenantID)
	}
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, visitas)
}

func (h *VisitaHandler) Get(c *gin.Context) {
	visita, err := h.repo.GetByID(c.Request.Context(), TenantID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if visita == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, visita)
}

func (h *VisitaHandler) Create(c *gin.Context) {
	var payload entities.Visita
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

func (h *VisitaHandler) Update(c *gin.Context) {
	var up entities.VisitaUpdate
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

func (h *VisitaHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), TenantID(c), c.Param("id")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
