package repository

import (
	"context"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type projetoItem struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	GSI1PK   string `dynamodbav:"gsi1pk,omitempty"`
	GSI1SK   string `dynamodbav:"gsi1sk,omitempty"`
	GSI2PK   string `dynamodbav:"gsi2pk,omitempty"`
	GSI2SK   string `dynamodbav:"gsi2sk,omitempty"`
	TenantID string `dynamodbav:"tenantId"`
	Versao   int64  `dynamodbav:"versao"`

	ID            string  `dynamodbav:"id"`
	ClienteID     string  `dynamodbav:"clienteId"`
	PropriedadeID string  `dynamodbav:"propriedadeId"`
	Titulo        string  `dynamodbav:"titulo"`
	LinhaCredito  string  `dynamodbav:"linhaCredito,omitempty"`
	Valor         float64 `dynamodbav:"valor,omitempty"`
	Status        string  `dynamodbav:"status,omitempty"`

	DataCriacao     string `dynamodbav:"dataCriacao"`
	DataAtualizacao string `dynamodbav:"dataAtualizacao"`
}

// ProjetoRepository persists loan projects.
//
// Keys:
//   - PK: TENANT:<tenantId> / PROJETO:<id>
//   - GSI1: CLIENTE:<clienteId>
//   - GSI2: PROPRIEDADE:<propriedadeId>
//
// Projects have two parents, so the attribute slot of the second index is
// reused for the property parent instead of a lookup attribute.
type ProjetoRepository struct {
	baseRepository[entities.Projeto, *entities.Projeto]
}

var _ interfaces.IProjetoRepository = (*ProjetoRepository)(nil)

func NewProjetoRepository(ddb DynamoAPI, cfg Config) *ProjetoRepository {
	return &ProjetoRepository{baseRepository[entities.Projeto, *entities.Projeto]{
		ddb:       ddb,
		table:     cfg.TableName,
		kind:      "projeto",
		token:     tokenProjeto,
		marshal:   marshalProjeto,
		unmarshal: unmarshalProjeto,
	}}
}

func (r *ProjetoRepository) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Projeto, error) {
	return r.queryIndex(ctx, tenantID, "list-by-cliente", gsi1Name, "gsi1pk",
		parentPartition(tokenCliente, clienteID), nil)
}

func (r *ProjetoRepository) ListByPropriedade(ctx context.Context, tenantID, propriedadeID string) ([]entities.Projeto, error) {
	return r.queryIndex(ctx, tenantID, "list-by-propriedade", gsi2Name, "gsi2pk",
		parentPartition(tokenPropriedade, propriedadeID), nil)
}

func (r *ProjetoRepository) Update(ctx context.Context, tenantID, id string, up entities.ProjetoUpdate) (*entities.Projeto, error) {
	return r.update(ctx, tenantID, id, func(p *entities.Projeto) error {
		up.Apply(p)
		return nil
	})
}

func marshalProjeto(p entities.Projeto, tenantID string, versao int64) (map[string]types.AttributeValue, error) {
	sk := entitySortKey(tokenProjeto, p.ID)
	it := projetoItem{
		PK:              tenantPartition(tenantID),
		SK:              sk,
		TenantID:        tenantID,
		Versao:          versao,
		ID:              p.ID,
		ClienteID:       p.ClienteID,
		PropriedadeID:   p.PropriedadeID,
		Titulo:          p.Titulo,
		LinhaCredito:    p.LinhaCredito,
		Valor:           p.Valor,
		Status:          string(p.Status),
		DataCriacao:     formatTime(p.DataCriacao),
		DataAtualizacao: formatTime(p.DataAtualizacao),
	}
	if p.ClienteID != "" {
		it.GSI1PK = parentPartition(tokenCliente, p.ClienteID)
		it.GSI1SK = sk
	}
	if p.PropriedadeID != "" {
		it.GSI2PK = parentPartition(tokenPropriedade, p.PropriedadeID)
		it.GSI2SK = sk
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalProjeto(raw map[string]types.AttributeValue) (entities.Projeto, error) {
	var it projetoItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Projeto{}, err
	}
	criado, atualizado, err := parseStamps(it.DataCriacao, it.DataAtualizacao)
	if err != nil {
		return entities.Projeto{}, err
	}
	return entities.Projeto{
		Registro: entities.Registro{
			ID:              it.ID,
			DataCriacao:     criado,
			DataAtualizacao: atualizado,
		},
		ClienteID:     it.ClienteID,
		PropriedadeID: it.PropriedadeID,
		Titulo:        it.Titulo,
		LinhaCredito:  it.LinhaCredito,
		Valor:         it.Valor,
		Status:        entities.StatusProjeto(it.Status),
	}, nil
}
