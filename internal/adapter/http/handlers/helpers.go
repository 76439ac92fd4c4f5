package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/persistence/repository"
	"github.com/agro-trimobe/rural-credit-app-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// TenantKey is where the tenant middleware stores the validated tenant id.
const TenantKey = "tenantID"

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errNotFound       = pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	errConflict       = pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Resource changed since read, retry", http.StatusConflict)
	errStorage        = pkg.NewDomainErrorSimple("STORAGE_ERROR", "Storage operation failed", http.StatusInternalServerError)
	errTenantRequired = pkg.NewDomainErrorSimple("TENANT_REQUIRED", "Tenant id is required", http.StatusBadRequest)
)

// TenantID returns the tenant resolved by the middleware.
func TenantID(c *gin.Context) string {
	return c.GetString(TenantKey)
}

func respondBadPayload(c *gin.Context) {
	c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
}

func respondNotFound(c *gin.Context) {
	c.JSON(errNotFound.HTTPStatus, errNotFound.ToHTTPError())
}

// respondRepoError maps the repository error taxonomy onto HTTP: conflicts
// are retryable 409s, missing tenant is a caller bug, the rest is opaque.
func respondRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrVersionConflict):
		c.JSON(errConflict.HTTPStatus, errConflict.ToHTTPError())
	case errors.Is(err, repository.ErrTenantRequired):
		c.JSON(errTenantRequired.HTTPStatus, errTenantRequired.ToHTTPError())
	default:
		log.Printf("[crm][handler] repository error path=%s err=%v", c.FullPath(), err)
		c.JSON(errStorage.HTTPStatus, errStorage.ToHTTPError())
	}
}
