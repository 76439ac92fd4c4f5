package interfaces

import "context"

type CustomerInput struct {
	Email   string
	Nome    string
	CpfCnpj string
}

type CustomerOutput struct {
	CustomerID string
}

type SubscriptionInput struct {
	CustomerID string
	Email      string
	Plano      string
	Valor      float64
	// TenantID travels as the external reference so provider webhooks can be
	// traced back to the tenant.
	TenantID    string
	CardTokenID string
}

type SubscriptionOutput struct {
	SubscriptionID string
	Status         string
	InitPoint      string
}

// IBillingGateway abstracts the external subscription provider (Mercado
// Pago). The CRM only ever creates a customer and a recurring subscription;
// everything else about billing lives in the provider.
type IBillingGateway interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (CustomerOutput, error)
	CreateSubscription(ctx context.Context, in SubscriptionInput) (SubscriptionOutput, error)
}
