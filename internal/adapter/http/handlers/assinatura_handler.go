package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/http/dto/request"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/http/dto/response"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase"
	"github.com/agro-trimobe/rural-credit-app-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var errBilling = pkg.NewDomainErrorSimple("BILLING_ERROR", "Subscription could not be created", http.StatusBadGateway)

type AssinaturaHandler struct {
	uc usecase.IAssinaturaUseCase
}

func NewAssinaturaHandler(uc usecase.IAssinaturaUseCase) *AssinaturaHandler {
	return &AssinaturaHandler{uc: uc}
}

// Create onboards a tenant subscription with the payment provider.
// The tenant comes from the request body, not the tenant header: the
// caller is the signup flow, which runs before the tenant exists.
func (h *AssinaturaHandler) Create(c *gin.Context) {
	var payload request.AssinaturaCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadPayload(c)
		return
	}

	result, err := h.uc.Subscribe(c.Request.Context(),
		payload.TenantID, payload.Email, payload.Nome,
		payload.CpfCnpj, payload.Plano, payload.CardTokenID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidTenantID),
			errors.Is(err, usecase.ErrInvalidEmail),
			errors.Is(err, usecase.ErrInvalidPlano),
			errors.Is(err, usecase.ErrInvalidValorPlano):
			de := pkg.NewDomainErrorSimple("INVALID_SUBSCRIPTION", err.Error(), http.StatusBadRequest)
			c.JSON(de.HTTPStatus, de.ToHTTPError())
		default:
			log.Printf("[billing][handler] subscribe failed err=%v", err)
			c.JSON(errBilling.HTTPStatus, errBilling.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusCreated, response.FromAssinaturaResult(result))
}
