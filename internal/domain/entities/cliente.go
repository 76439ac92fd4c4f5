package entities

// PerfilCliente classifies the producer profile used by the credit lines.
type PerfilCliente string

const (
	PerfilPequeno PerfilCliente = "pequeno"
	PerfilMedio   PerfilCliente = "medio"
	PerfilGrande  PerfilCliente = "grande"
)

// Cliente is the rural producer managed by the loan officer.
//
// Storage model (single CRM table):
//   - PK: TENANT:<tenantId> / CLIENTE:<id>
//   - GSI1: TENANT:<tenantId>:CPF_CNPJ:<cpfCnpj> (tax-id lookup)
//
// Propriedades and Interacoes hold ids of owned records; ownership is a plain
// attribute, there is no referential integrity in the table.
type Cliente struct {
	Registro
	Nome           string        `json:"nome"`
	CpfCnpj        string        `json:"cpfCnpj"`
	Email          string        `json:"email,omitempty"`
	Telefone       string        `json:"telefone,omitempty"`
	Perfil         PerfilCliente `json:"perfil,omitempty"`
	DataNascimento string        `json:"dataNascimento,omitempty"`
	Propriedades   []string      `json:"propriedades,omitempty"`
	Interacoes     []string      `json:"interacoes,omitempty"`
}

// ClienteUpdate carries the fields a caller may change. Nil means "keep".
type ClienteUpdate struct {
	Nome           *string        `json:"nome"`
	CpfCnpj        *string        `json:"cpfCnpj"`
	Email          *string        `json:"email"`
	Telefone       *string        `json:"telefone"`
	Perfil         *PerfilCliente `json:"perfil"`
	DataNascimento *string        `json:"dataNascimento"`
	Propriedades   *[]string      `json:"propriedades"`
	Interacoes     *[]string      `json:"interacoes"`
}

func (u ClienteUpdate) Apply(c *Cliente) {
	if u.Nome != nil {
		c.Nome = *u.Nome
	}
	if u.CpfCnpj != nil {
		c.CpfCnpj = *u.CpfCnpj
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Telefone != nil {
		c.Telefone = *u.Telefone
	}
	if u.Perfil != nil {
		c.Perfil = *u.Perfil
	}
	if u.DataNascimento != nil {
		c.DataNascimento = *u.DataNascimento
	}
	if u.Propriedades != nil {
		c.Propriedades = *u.Propriedades
	}
	if u.Interacoes != nil {
		c.Interacoes = *u.Interacoes
	}
}
