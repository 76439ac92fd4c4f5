package entities

// StatusProjeto is the lifecycle of a loan project.
type StatusProjeto string

const (
	ProjetoEmElaboracao StatusProjeto = "em_elaboracao"
	ProjetoEmAnalise    StatusProjeto = "em_analise"
	ProjetoAprovado     StatusProjeto = "aprovado"
	ProjetoContratado   StatusProjeto = "contratado"
	ProjetoRecusado     StatusProjeto = "recusado"
)

// Projeto is a rural-credit loan project tied to a client and a property.
//
// Storage model:
//   - PK: TENANT:<tenantId> / PROJETO:<id>
//   - GSI1: CLIENTE:<clienteId>
//   - GSI2: PROPRIEDADE:<propriedadeId> (the attribute slot is reused for the
//     second parent; each entity type only gets two indexes)
type Projeto struct {
	Registro
	ClienteID     string        `json:"clienteId"`
	PropriedadeID string        `json:"propriedadeId"`
	Titulo        string        `json:"titulo"`
	LinhaCredito  string        `json:"linhaCredito,omitempty"`
	Valor         float64       `json:"valor,omitempty"`
	Status        StatusProjeto `json:"status,omitempty"`
}

type ProjetoUpdate struct {
	ClienteID     *string        `json:"clienteId"`
	PropriedadeID *string        `json:"propriedadeId"`
	Titulo        *string        `json:"titulo"`
	LinhaCredito  *string        `json:"linhaCredito"`
	Valor         *float64       `json:"valor"`
	Status        *StatusProjeto `json:"status"`
}

func (u ProjetoUpdate) Apply(p *Projeto) {
	if u.ClienteID != nil {
		p.ClienteID = *u.ClienteID
	}
	if u.PropriedadeID != nil {
		p.PropriedadeID = *u.PropriedadeID
	}
	if u.Titulo != nil {
		p.Titulo = *u.Titulo
	}
	if u.LinhaCredito != nil {
		p.LinhaCredito = *u.LinhaCredito
	}
	if u.Valor != nil {
		p.Valor = *u.Valor
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
}
