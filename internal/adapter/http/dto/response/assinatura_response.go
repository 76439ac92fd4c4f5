package response

import "github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase"

type AssinaturaResponse struct {
	CustomerID     string `json:"customerId"`
	SubscriptionID string `json:"subscriptionId"`
	Status         string `json:"status"`
	InitPoint      string `json:"initPoint,omitempty"`
}

func FromAssinaturaResult(r usecase.AssinaturaResult) AssinaturaResponse {
	return AssinaturaResponse{
		CustomerID:     r.CustomerID,
		SubscriptionID: r.SubscriptionID,
		Status:         r.Status,
		InitPoint:      r.InitPoint,
	}
}
