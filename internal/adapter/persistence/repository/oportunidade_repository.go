package repository

import (
	"context"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type oportunidadeItem struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	GSI1PK   string `dynamodbav:"gsi1pk,omitempty"`
	GSI1SK   string `dynamodbav:"gsi1sk,omitempty"`
	GSI2PK   string `dynamodbav:"gsi2pk,omitempty"`
	GSI2SK   string `dynamodbav:"gsi2sk,omitempty"`
	TenantID string `dynamodbav:"tenantId"`
	Versao   int64  `dynamodbav:"versao"`

	ID        string  `dynamodbav:"id"`
	ClienteID string  `dynamodbav:"clienteId"`
	Titulo    string  `dynamodbav:"titulo"`
	Descricao string  `dynamodbav:"descricao,omitempty"`
	Valor     float64 `dynamodbav:"valor,omitempty"`
	Status    string  `dynamodbav:"status"`

	DataCriacao     string `dynamodbav:"dataCriacao"`
	DataAtualizacao string `dynamodbav:"dataAtualizacao"`
}

// OportunidadeRepository persists pipeline opportunities.
//
// Keys:
//   - PK: TENANT:<tenantId> / OPORTUNIDADE:<id>
//   - GSI1: CLIENTE:<clienteId>
//   - GSI2: TENANT:<tenantId>:STATUS:<status> (pipeline board columns)
type OportunidadeRepository struct {
	baseRepository[entities.Oportunidade, *entities.Oportunidade]
}

var _ interfaces.IOportunidadeRepository = (*OportunidadeRepository)(nil)

func NewOportunidadeRepository(ddb DynamoAPI, cfg Config) *OportunidadeRepository {
	return &OportunidadeRepository{baseRepository[entities.Oportunidade, *entities.Oportunidade]{
		ddb:       ddb,
		table:     cfg.TableName,
		kind:      "oportunidade",
		token:     tokenOportunidade,
		marshal:   marshalOportunidade,
		unmarshal: unmarshalOportunidade,
	}}
}

func (r *OportunidadeRepository) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Oportunidade, error) {
	return r.queryIndex(ctx, tenantID, "list-by-cliente", gsi1Name, "gsi1pk",
		parentPartition(tokenCliente, clienteID), nil)
}

func (r *OportunidadeRepository) ListByStatus(ctx context.Context, tenantID string, status entities.StatusOportunidade) ([]entities.Oportunidade, error) {
	return r.queryIndex(ctx, tenantID, "list-by-status", gsi2Name, "gsi2pk",
		tenantAttributePartition(tenantID, attrStatus, string(status)), nil)
}

func (r *OportunidadeRepository) Update(ctx context.Context, tenantID, id string, up entities.OportunidadeUpdate) (*entities.Oportunidade, error) {
	return r.update(ctx, tenantID, id, func(o *entities.Oportunidade) error {
		up.Apply(o)
		return nil
	})
}

func marshalOportunidade(o entities.Oportunidade, tenantID string, versao int64) (map[string]types.AttributeValue, error) {
	sk := entitySortKey(tokenOportunidade, o.ID)
	it := oportunidadeItem{
		PK:              tenantPartition(tenantID),
		SK:              sk,
		TenantID:        tenantID,
		Versao:          versao,
		ID:              o.ID,
		ClienteID:       o.ClienteID,
		Titulo:          o.Titulo,
		Descricao:       o.Descricao,
		Valor:           o.Valor,
		Status:          string(o.Status),
		DataCriacao:     formatTime(o.DataCriacao),
		DataAtualizacao: formatTime(o.DataAtualizacao),
	}
	if o.ClienteID != "" {
		it.GSI1PK = parentPartition(tokenCliente, o.ClienteID)
		it.GSI1SK = sk
	}
	if o.Status != "" {
		it.GSI2PK = tenantAttributePartition(tenantID, attrStatus, string(o.Status))
		it.GSI2SK = sk
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalOportunidade(raw map[string]types.AttributeValue) (entities.Oportunidade, error) {
	var it oportunidadeItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Oportunidade{}, err
	}
	criado, atualizado, err := parseStamps(it.DataCriacao, it.DataAtualizacao)
	if err != nil {
		return entities.Oportunidade{}, err
	}
	return entities.Oportunidade{
		Registro: entities.Registro{
			ID:              it.ID,
			DataCriacao:     criado,
			DataAtualizacao: atualizado,
		},
		ClienteID: it.ClienteID,
		Titulo:    it.Titulo,
		Descricao: it.Descricao,
		Valor:     it.Valor,
		Status:    entities.StatusOportunidade(it.Status),
	}, nil
}
