package request

// AssinaturaCreateRequest is the payload for the subscription onboarding route.
type AssinaturaCreateRequest struct {
	TenantID    string `json:"tenantId"`
	Email       string `json:"email"`
	Nome        string `json:"nome"`
	CpfCnpj     string `json:"cpfCnpj"`
	Plano       string `json:"plano"`
	CardTokenID string `json:"cardTokenId"`
}
