package entities

// Interacao is a contact record between the officer and a client (call,
// meeting, field note). Data is the calendar day of the contact, formatted
// 2006-01-02; it drives the by-date lookup.
//
// Storage model:
//   - PK: TENANT:<tenantId> / INTERACAO:<id>
//   - GSI1: CLIENTE:<clienteId>
//   - GSI2: TENANT:<tenantId>:DATA:<data>
type Interacao struct {
	Registro
	ClienteID string `json:"clienteId"`
	Assunto   string `json:"assunto"`
	Descricao string `json:"descricao,omitempty"`
	Canal     string `json:"canal,omitempty"`
	Data      string `json:"data"`
}

type InteracaoUpdate struct {
	ClienteID *string `json:"clienteId"`
	Assunto   *string `json:"assunto"`
	Descricao *string `json:"descricao"`
	Canal     *string `json:"canal"`
	Data      *string `json:"data"`
}

func (u InteracaoUpdate) Apply(i *Interacao) {
	if u.ClienteID != nil {
		i.ClienteID = *u.ClienteID
	}
	if u.Assunto != nil {
		i.Assunto = *u.Assunto
	}
	if u.Descricao != nil {
		i.Descricao = *u.Descricao
	}
	if u.Canal != nil {
		i.Canal = *u.Canal
	}
	if u.Data != nil {
		i.Data = *u.Data
	}
}
