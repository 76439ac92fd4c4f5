package entities

// StatusVisita is the scheduling state of a field visit.
type StatusVisita string

const (
	VisitaAgendada  StatusVisita = "agendada"
	VisitaRealizada StatusVisita = "realizada"
	VisitaCancelada StatusVisita = "cancelada"
)

// Visita is a technical field visit to a property, optionally tied to a
// loan project.
//
// Storage model:
//   - PK: TENANT:<tenantId> / VISITA:<id>
//   - GSI1: CLIENTE:<clienteId>
//
// Visita carries no GSI2 key; the current access patterns only list visits
// per tenant or per client.
type Visita struct {
	Registro
	ClienteID     string       `json:"clienteId"`
	PropriedadeID string       `json:"propriedadeId"`
	ProjetoID     string       `json:"projetoId,omitempty"`
	Data          string       `json:"data"`
	Status        StatusVisita `json:"status,omitempty"`
	Observacoes   string       `json:"observacoes,omitempty"`
	Fotos         []string     `json:"fotos,omitempty"`
}

type VisitaUpdate struct {
	ClienteID     *string       `json:"clienteId"`
	PropriedadeID *string       `json:"propriedadeId"`
	ProjetoID     *string       `json:"projetoId"`
	Data          *string       `json:"data"`
	Status        *StatusVisita `json:"status"`
	Observacoes   *string       `json:"observacoes"`
	Fotos         *[]string     `json:"fotos"`
}

func (u VisitaUpdate) Apply(v *Visita) {
	if u.ClienteID != nil {
		v.ClienteID = *u.ClienteID
	}
	if u.PropriedadeID != nil {
		v.PropriedadeID = *u.PropriedadeID
	}
	if u.ProjetoID != nil {
		v.ProjetoID = *u.ProjetoID
	}
	if u.Data != nil {
		v.Data = *u.Data
	}
	if u.Status != nil {
		v.Status = *u.Status
	}
	if u.Observacoes != nil {
		v.Observacoes = *u.Observacoes
	}
	if u.Fotos != nil {
		v.Fotos = *u.Fotos
	}
}
