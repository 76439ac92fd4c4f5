package entities

// Documento is a file attached to a client, optionally scoped to a project
// and/or a visit.
//
// Storage model:
//   - PK: TENANT:<tenantId> / DOCUMENTO:<id>
//   - GSI1: CLIENTE:<clienteId>
//   - GSI2: TIPO:<tipo> (document type, global attribute space)
//
// There is no index for "documents of a project"; that lookup scans the
// tenant partition and filters on projetoId.
//
// URL holds either a durable object-storage URL or, on the way into
// create/update, a transient staged reference that the repository
// materializes through the upload service before persisting.
type Documento struct {
	Registro
	ClienteID string `json:"clienteId"`
	ProjetoID string `json:"projetoId,omitempty"`
	VisitaID  string `json:"visitaId,omitempty"`
	Nome      string `json:"nome"`
	Tipo      string `json:"tipo"`
	Formato   string `json:"formato,omitempty"`
	URL       string `json:"url,omitempty"`
	Caminho   string `json:"caminho,omitempty"`
	Tamanho   int64  `json:"tamanho,omitempty"`
}

type DocumentoUpdate struct {
	ClienteID *string `json:"clienteId"`
	ProjetoID *string `json:"projetoId"`
	VisitaID  *string `json:"visitaId"`
	Nome      *string `json:"nome"`
	Tipo      *string `json:"tipo"`
	Formato   *string `json:"formato"`
	URL       *string `json:"url"`
	Caminho   *string `json:"caminho"`
	Tamanho   *int64  `json:"tamanho"`
}

func (u DocumentoUpdate) Apply(d *Documento) {
	if u.ClienteID != nil {
		d.ClienteID = *u.ClienteID
	}
	if u.ProjetoID != nil {
		d.ProjetoID = *u.ProjetoID
	}
	if u.VisitaID != nil {
		d.VisitaID = *u.VisitaID
	}
	if u.Nome != nil {
		d.Nome = *u.Nome
	}
	if u.Tipo != nil {
		d.Tipo = *u.Tipo
	}
	if u.Formato != nil {
		d.Formato = *u.Formato
	}
	if u.URL != nil {
		d.URL = *u.URL
	}
	if u.Caminho != nil {
		d.Caminho = *u.Caminho
	}
	if u.Tamanho != nil {
		d.Tamanho = *u.Tamanho
	}
}
