package entities

// Coordenadas is the geographic location of a property.
type Coordenadas struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Propriedade is a rural property owned by a Cliente.
//
// Storage model:
//   - PK: TENANT:<tenantId> / PROPRIEDADE:<id>
//   - GSI1: CLIENTE:<clienteId> (list by owner)
//   - GSI2: TENANT:<tenantId>:MUNICIPIO:<municipio> (list by municipality)
type Propriedade struct {
	Registro
	ClienteID   string       `json:"clienteId"`
	Nome        string       `json:"nome"`
	Municipio   string       `json:"municipio"`
	Estado      string       `json:"estado,omitempty"`
	AreaTotal   float64      `json:"areaTotal,omitempty"`
	Coordenadas *Coordenadas `json:"coordenadas,omitempty"`
}

type PropriedadeUpdate struct {
	ClienteID   *string      `json:"clienteId"`
	Nome        *string      `json:"nome"`
	Municipio   *string      `json:"municipio"`
	Estado      *string      `json:"estado"`
	AreaTotal   *float64     `json:"areaTotal"`
	Coordenadas *Coordenadas `json:"coordenadas"`
}

func (u PropriedadeUpdate) Apply(p *Propriedade) {
	if u.ClienteID != nil {
		p.ClienteID = *u.ClienteID
	}
	if u.Nome != nil {
		p.Nome = *u.Nome
	}
	if u.Municipio != nil {
		p.Municipio = *u.Municipio
	}
	if u.Estado != nil {
		p.Estado = *u.Estado
	}
	if u.AreaTotal != nil {
		p.AreaTotal = *u.AreaTotal
	}
	if u.Coordenadas != nil {
		p.Coordenadas = u.Coordenadas
	}
}
