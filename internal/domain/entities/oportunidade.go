package entities

// StatusOportunidade is the sales-pipeline stage of an opportunity.
type StatusOportunidade string

const (
	OportunidadeProspeccao StatusOportunidade = "prospeccao"
	OportunidadeContato    StatusOportunidade = "contato"
	OportunidadeProposta   StatusOportunidade = "proposta"
	OportunidadeNegociacao StatusOportunidade = "negociacao"
	OportunidadeFechada    StatusOportunidade = "fechada"
	OportunidadePerdida    StatusOportunidade = "perdida"
)

// Oportunidade is a credit opportunity in the officer's pipeline.
//
// Storage model:
//   - PK: TENANT:<tenantId> / OPORTUNIDADE:<id>
//   - GSI1: CLIENTE:<clienteId>
//   - GSI2: TENANT:<tenantId>:STATUS:<status> (pipeline board lookup)
type Oportunidade struct {
	Registro
	ClienteID string             `json:"clienteId"`
	Titulo    string             `json:"titulo"`
	Descricao string             `json:"descricao,omitempty"`
	Valor     float64            `json:"valor,omitempty"`
	Status    StatusOportunidade `json:"status"`
}

type OportunidadeUpdate struct {
	ClienteID *string             `json:"clienteId"`
	Titulo    *string             `json:"titulo"`
	Descricao *string             `json:"descricao"`
	Valor     *float64            `json:"valor"`
	Status    *StatusOportunidade `json:"status"`
}

func (u OportunidadeUpdate) Apply(o *Oportunidade) {
	if u.ClienteID != nil {
		o.ClienteID = *u.ClienteID
	}
	if u.Titulo != nil {
		o.Titulo = *u.Titulo
	}
	if u.Descricao != nil {
		o.Descricao = *u.Descricao
	}
	if u.Valor != nil {
		o.Valor = *u.Valor
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
}
