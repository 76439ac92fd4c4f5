package handlers

import (
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// ClienteHandler exposes client CRUD over the repository. The handlers are
// pass-through: binding, tenant propagation and status mapping only.
type ClienteHandler struct {
	repo interfaces.IClienteRepository
}

func NewClienteHandler(repo interfaces.IClienteRepository) *ClienteHandler {
	return &ClienteHandler{repo: repo}
}

// List serves the tenant listing and, with ?cpfCnpj=, the tax-id lookup.
func (h *ClienteHandler) List(c *gin.Context) {
	tenantID := TenantID(c)

	if cpfCnpj := c.Query("cpfCnpj"); cpfCnpj != "" {
		cliente, err := h.repo.GetByCpfCnpj(c.Request.Context(), tenantID, cpfCnpj)
		if err != nil {
			respondRepoError(c, err)
			return
		}
		out := []entities.Cliente{}
		if cliente != nil {
			out = append(out, *cliente)
		}
		c.JSON(http.StatusOK, out)
		return
	}

	clientes, err := h.repo.List(c.Request.Context(), tenantID)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) Get(c *gin.Context) {
	cliente, err := h.repo.GetByID(c.Request.Context(), TenantID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if cliente == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var payload entities.Cliente
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

func (h *ClienteHandler) Update(c *gin.Context) {
	var up entities.ClienteUpdate
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

func (h *ClienteHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), TenantID(c), c.Param("id")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
