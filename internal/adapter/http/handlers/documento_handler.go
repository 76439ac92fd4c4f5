package handlers

import (
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// DocumentoHandler exposes document CRUD. Upload materialization happens in
// the repository; this layer only binds and maps statuses.
type DocumentoHandler struct {
	repo interfaces.IDocumentoRepository
}

func NewDocumentoHandler(repo interfaces.IDocumentoRepository) *DocumentoHandler {
	return &DocumentoHandler{repo: repo}
}

// List serves the tenant listing, ?clienteId=, ?tipo= and ?projetoId=.
// The projetoId lookup has no index and runs as a filtered partition scan.
func (h *DocumentoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := TenantID(c)

	var (
		documentos []entities.Documento
		err        error
	)
	switch {
	case c.Query("clienteId") != "":
		documentos, err = h.repo.ListByCliente(ctx, tenantID, c.Query("clienteId"))
	case c.Query("tipo") != "":
		documentos, err = h.repo.ListByTipo(ctx, tenantID, c.Query("tipo"))
	case c.Query("projetoId") != "":
		documentos, err = h.repo.ListByProjeto(ctx, tenantID, c.Query("projetoId"))
	default:
		documentos, err = h.repo.List(ctx, tenantID)
	}
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, documentos)
}

func (h *DocumentoHandler) Get(c *gin.Context) {
	documento, err := h.repo.GetByID(c.Request.Context(), TenantID(c), c.Param("id"))
	if err != nil {
		respondRepoError(c, err)
		return
	}
	if documento == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, documento)
}

func (h *DocumentoHandler) Create(c *gin.Context) {
	var payload entities.Documento
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

func (h *DocumentoHandler) Update(c *gin.Context) {
	var up entities.DocumentoUpdate
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

func (h *DocumentoHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), TenantID(c), c.Param("id")); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
