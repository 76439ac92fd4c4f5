package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/customer"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements the subscription-provider black box: create
// a customer, create a recurring subscription. Mock mode short-circuits both
// calls for local runs without provider credentials.
type MercadoPagoGateway struct {
	customers     customer.Client
	subscriptions preapproval.Client
	mockMode      bool
}

var _ interfaces.IBillingGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isBillingGatewayMockEnabled() {
		log.Printf("[billing][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[billing][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[billing][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		customers:     customer.NewClient(cfg),
		subscriptions: preapproval.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreateCustomer(ctx context.Context, in interfaces.CustomerInput) (interfaces.CustomerOutput, error) {
	if g != nil && g.mockMode {
		id := "mock-cus-" + uuid.NewString()
		log.Printf("[billing][gateway] mock customer created customer_id=%s", id)
		return interfaces.CustomerOutput{CustomerID: id}, nil
	}
	if g == nil || g.customers == nil {
		return interfaces.CustomerOutput{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[billing][gateway] create customer start email=%s", in.Email)

	resp, err := g.customers.Create(ctx, customer.Request{
		Email:       in.Email,
		FirstName:   in.Nome,
		Description: "cpf_cnpj=" + in.CpfCnpj,
	})
	if err != nil {
		log.Printf("[billing][gateway] sdk create customer failed err=%v", err)
		return interfaces.CustomerOutput{}, err
	}

	log.Printf("[billing][gateway] create customer success customer_id=%s", resp.ID)
	return interfaces.CustomerOutput{CustomerID: resp.ID}, nil
}

func (g *MercadoPagoGateway) CreateSubscription(ctx context.Context, in interfaces.SubscriptionInput) (interfaces.SubscriptionOutput, error) {
	if g != nil && g.mockMode {
		id := "mock-sub-" + uuid.NewString()
		log.Printf("[billing][gateway] mock subscription created subscription_id=%s", id)
		return interfaces.SubscriptionOutput{SubscriptionID: id, Status: "authorized"}, nil
	}
	if g == nil || g.subscriptions == nil {
		return interfaces.SubscriptionOutput{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[billing][gateway] create subscription start plano=%s tenant_id=%s", in.Plano, in.TenantID)

	resp, err := g.subscriptions.Create(ctx, preapproval.Request{
		PayerEmail:        in.Email,
		Reason:            fmt.Sprintf("Assinatura CRM - plano %s", in.Plano),
		ExternalReference: in.TenantID,
		CardTokenID:       in.CardTokenID,
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: in.Valor,
			CurrencyID:        "BRL",
		},
	})
	if err != nil {
		log.Printf("[billing][gateway] sdk create subscription failed err=%v", err)
		return interfaces.SubscriptionOutput{}, err
	}

	log.Printf("[billing][gateway] create subscription success subscription_id=%s status=%s", resp.ID, resp.Status)
	return interfaces.SubscriptionOutput{
		SubscriptionID: resp.ID,
		Status:         resp.Status,
		InitPoint:      resp.InitPoint,
	}, nil
}

func isBillingGatewayMockEnabled() bool {
	for _, key := range []string{"BILLING_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
