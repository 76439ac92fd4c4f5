package entities

import "time"

// Registro carries the fields shared by every CRM entity: the opaque id and
// the server-assigned lifecycle timestamps. Embedding it gives the generic
// repository a uniform way to stamp identity and timestamps on creation and
// update without knowing the concrete entity type.
type Registro struct {
	ID              string    `json:"id"`
	DataCriacao     time.Time `json:"dataCriacao"`
	DataAtualizacao time.Time `json:"dataAtualizacao"`
}

func (r *Registro) GetID() string { return r.ID }

func (r *Registro) SetID(id string) { r.ID = id }

// MarkCreated sets both timestamps. Used once, on create.
func (r *Registro) MarkCreated(now time.Time) {
	r.DataCriacao = now
	r.DataAtualizacao = now
}

// MarkUpdated refreshes only dataAtualizacao. Callers never set it directly.
func (r *Registro) MarkUpdated(now time.Time) {
	r.DataAtualizacao = now
}

// Entidade is implemented by every CRM entity via the embedded Registro.
type Entidade interface {
	GetID() string
	SetID(id string)
	MarkCreated(now time.Time)
	MarkUpdated(now time.Time)
}
