package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"
)

var (
	ErrInvalidTenantID   = errors.New("invalid tenant id")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrInvalidPlano      = errors.New("invalid plano")
	ErrInvalidValorPlano = errors.New("invalid plano value")
)

// Plans offered to tenants. Values in BRL per month.
var planoValores = map[string]float64{
	"basico":       49.90,
	"profissional": 99.90,
}

// AssinaturaResult is what the onboarding flow hands back to the caller.
type AssinaturaResult struct {
	CustomerID     string `json:"customerId"`
	SubscriptionID string `json:"subscriptionId"`
	Status         string `json:"status"`
	InitPoint      string `json:"initPoint,omitempty"`
}

// IAssinaturaUseCase exposes tenant subscription onboarding: create the
// provider customer, then the recurring subscription. Nothing is persisted
// here; the tenant/user store lives outside this service.
type IAssinaturaUseCase interface {
	Subscribe(ctx context.Context, tenantID, email, nome, cpfCnpj, plano, cardTokenID string) (AssinaturaResult, error)
}

type AssinaturaUseCase struct {
	gateway interfaces.IBillingGateway
}

var _ IAssinaturaUseCase = (*AssinaturaUseCase)(nil)

func NewAssinaturaUseCase(gateway interfaces.IBillingGateway) *AssinaturaUseCase {
	return &AssinaturaUseCase{gateway: gateway}
}

func (u *AssinaturaUseCase) Subscribe(ctx context.Context, tenantID, email, nome, cpfCnpj, plano, cardTokenID string) (AssinaturaResult, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return AssinaturaResult{}, ErrInvalidTenantID
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return AssinaturaResult{}, ErrInvalidEmail
	}
	plano = strings.ToLower(strings.TrimSpace(plano))
	valor, ok := planoValores[plano]
	if !ok {
		return AssinaturaResult{}, ErrInvalidPlano
	}
	if u.gateway == nil {
		return AssinaturaResult{}, errors.New("billing gateway not configured")
	}

	log.Printf("[billing][usecase] subscribe start tenant_id=%s plano=%s", tenantID, plano)

	cus, err := u.gateway.CreateCustomer(ctx, interfaces.CustomerInput{
		Email:   email,
		Nome:    nome,
		CpfCnpj: cpfCnpj,
	})
	if err != nil {
		log.Printf("[billing][usecase] create customer failed tenant_id=%s err=%v", tenantID, err)
		return AssinaturaResult{}, err
	}

	sub, err := u.gateway.CreateSubscription(ctx, interfaces.SubscriptionInput{
		CustomerID:  cus.CustomerID,
		Email:       email,
		Plano:       plano,
		Valor:       valor,
		TenantID:    tenantID,
		CardTokenID: cardTokenID,
	})
	if err != nil {
		log.Printf("[billing][usecase] create subscription failed tenant_id=%s err=%v", tenantID, err)
		return AssinaturaResult{}, err
	}

	log.Printf("[billing][usecase] subscribe success tenant_id=%s subscription_id=%s", tenantID, sub.SubscriptionID)
	return AssinaturaResult{
		CustomerID:     cus.CustomerID,
		SubscriptionID: sub.SubscriptionID,
		Status:         sub.Status,
		InitPoint:      sub.InitPoint,
	}, nil
}
