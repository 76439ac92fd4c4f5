package routes

import (
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/http/handlers"
	"github.com/agro-trimobe/rural-credit-app-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// TenantHeader carries the caller's tenant on every data route.
const TenantHeader = "X-Tenant-ID"

var errMissingTenant = pkg.NewDomainErrorSimple("TENANT_REQUIRED", "Missing X-Tenant-ID header", http.StatusUnauthorized)

// tenantMiddleware rejects requests without a tenant header and makes the
// tenant available to the handlers. No cross-tenant request ever reaches
// the repositories.
func tenantMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader(TenantHeader)
		if tenantID == "" {
			c.AbortWithStatusJSON(errMissingTenant.HTTPStatus, errMissingTenant.ToHTTPError())
			return
		}
		c.Set(handlers.TenantKey, tenantID)
		c.Next()
	}
}
