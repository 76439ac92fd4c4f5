package interfaces

import (
	"context"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
)

// The eight CRM repositories share one contract shape: tenant-scoped CRUD
// plus the entity's indexed lookups. Point lookups return nil when absent;
// list lookups return an empty slice. Delete is idempotent. Update merges the
// supplied partial fields over the stored entity and fails with a conflict
// error when a concurrent writer got there first.

type IClienteRepository interface {
	List(ctx context.Context, tenantID string) ([]entities.Cliente, error)
	GetByID(ctx context.Context, tenantID, id string) (*entities.Cliente, error)
	GetByCpfCnpj(ctx context.Context, tenantID, cpfCnpj string) (*entities.Cliente, error)
	Create(ctx context.Context, tenantID string, c entities.Cliente) (*entities.Cliente, error)
	Update(ctx context.Context, tenantID, id string, up entities.ClienteUpdate) (*entities.Cliente, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type IPropriedadeRepository interface {
	List(ctx context.Context, tenantID string) ([]entities.Propriedade, error)
	GetByID(ctx context.Context, tenantID, id string) (*entities.Propriedade, error)
	ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Propriedade, error)
	ListByMunicipio(ctx context.Context, tenantID, municipio string) ([]entities.Propriedade, error)
	Create(ctx context.Context, tenantID string, p entities.Propriedade) (*entities.Propriedade, error)
	Update(ctx context.Context, tenantID, id string, up entities.PropriedadeUpdate) (*entities.Propriedade, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type IProjetoRepository interface {
	List(ctx context.Context, tenantID string) ([]entities.Projeto, error)
	GetByID(ctx context.Context, tenantID, id string) (*entities.Projeto, error)
	ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Projeto, error)
	ListByPropriedade(ctx context.Context, tenantID, propriedadeID string) ([]entities.Projeto, error)
	Create(ctx context.Context, tenantID string, p entities.Projeto) (*entities.Projeto, error)
	Update(ctx context.Context, tenantID, id string, up entities.ProjetoUpdate) (*entities.Projeto, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type IDocumentoRepository interface {
	List(ctx context.Context, tenantID string) ([]entities.Documento, error)
	GetByID(ctx context.Context, tenantID, id string) (*entities.Documento, error)
	ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Documento, error)
	ListByTipo(ctx context.Context, tenantID, tipo string) ([]entities.Documento, error)
	ListByProjeto(ctx context.Context, tenantID, projetoID string) ([]entities.Documento, error)
	Create(ctx context.Context, tenantID string, d entities.Documento) (*entities.Documento, error)
	Update(ctx context.Context, tenantID, id string, up entities.DocumentoUpdate) (*entities.Documento, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type IInteracaoRepository interface {
	List(ctx context.Context, tenantID string) ([]entities.Interacao, error)
	GetByID(ctx context.Context, tenantID, id string) (*entities.Interacao, error)
	ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Interacao, error)
	ListByData(ctx context.Context, tenantID, data string) ([]entities.Interacao, error)
	Create(ctx context.Context, tenantID string, i entities.Interacao) (*entities.Interacao, error)
	Update(ctx context.Context, tenantID, id string, up entities.InteracaoUpdate) (*entities.Interacao, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type IOportunidadeRepository interface {
	List(ctx context.Context, tenantID string) ([]entities.Oportunidade, error)
	GetByID(ctx context.Context, tenantID, id string) (*entities.Oportunidade, error)
	ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Oportunidade, error)
	ListByStatus(ctx context.Context, tenantID string, status entities.StatusOportunidade) ([]entities.Oportunidade, error)
	Create(ctx context.Context, tenantID string, o entities.Oportunidade) (*entities.Oportunidade, error)
	Update(ctx context.Context, tenantID, id string, up entities.OportunidadeUpdate) (*entities.Oportunidade, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type IVisitaRepository interface {
	List(ctx context.Context, tenantID string) ([]entities.Visita, error)
	GetByID(ctx context.Context, tenantID, id string) (*entities.Visita, error)
	ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Visita, error)
	Create(ctx context.Context, tenantID string, v entities.Visita) (*entities.Visita, error)
	Update(ctx context.Context, tenantID, id string, up entities.VisitaUpdate) (*entities.Visita, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type ISimulacaoRepository interface {
	List(ctx context.Context, tenantID string) ([]entities.Simulacao, error)
	GetByID(ctx context.Context, tenantID, id string) (*entities.Simulacao, error)
	ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Simulacao, error)
	ListByLinhaCredito(ctx context.Context, tenantID, linhaCredito string) ([]entities.Simulacao, error)
	Create(ctx context.Context, tenantID string, s entities.Simulacao) (*entities.Simulacao, error)
	Update(ctx context.Context, tenantID, id string, up entities.SimulacaoUpdate) (*entities.Simulacao, error)
	Delete(ctx context.Context, tenantID, id string) error
}
