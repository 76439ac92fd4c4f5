package entities

// Simulacao is a financing simulation. It may exist on its own or be linked
// to a client and/or a loan project.
//
// Storage model:
//   - PK: TENANT:<tenantId> / SIMULACAO:<id>
//   - GSI1: CLIENTE:<clienteId> (sparse; only when linked to a client)
//   - GSI2: TENANT:<tenantId>:LINHA_CREDITO:<linhaCredito>
type Simulacao struct {
	Registro
	ClienteID          string  `json:"clienteId,omitempty"`
	ProjetoID          string  `json:"projetoId,omitempty"`
	LinhaCredito       string  `json:"linhaCredito"`
	ValorFinanciamento float64 `json:"valorFinanciamento"`
	TaxaJuros          float64 `json:"taxaJuros"`
	PrazoMeses         int     `json:"prazoMeses"`
	CarenciaMeses      int     `json:"carenciaMeses,omitempty"`
	ParcelaEstimada    float64 `json:"parcelaEstimada,omitempty"`
}

type SimulacaoUpdate struct {
	ClienteID          *string  `json:"clienteId"`
	ProjetoID          *string  `json:"projetoId"`
	LinhaCredito       *string  `json:"linhaCredito"`
	ValorFinanciamento *float64 `json:"valorFinanciamento"`
	TaxaJuros          *float64 `json:"taxaJuros"`
	PrazoMeses         *int     `json:"prazoMeses"`
	CarenciaMeses      *int     `json:"carenciaMeses"`
	ParcelaEstimada    *float64 `json:"parcelaEstimada"`
}

func (u SimulacaoUpdate) Apply(s *Simulacao) {
	if u.ClienteID != nil {
		s.ClienteID = *u.ClienteID
	}
	if u.ProjetoID != nil {
		s.ProjetoID = *u.ProjetoID
	}
	if u.LinhaCredito != nil {
		s.LinhaCredito = *u.LinhaCredito
	}
	if u.ValorFinanciamento != nil {
		s.ValorFinanciamento = *u.ValorFinanciamento
	}
	if u.TaxaJuros != nil {
		s.TaxaJuros = *u.TaxaJuros
	}
	if u.PrazoMeses != nil {
		s.PrazoMeses = *u.PrazoMeses
	}
	if u.CarenciaMeses != nil {
		s.CarenciaMeses = *u.CarenciaMeses
	}
	if u.ParcelaEstimada != nil {
		s.ParcelaEstimada = *u.ParcelaEstimada
	}
}
