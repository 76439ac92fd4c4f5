package repository

import (
	"context"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type interacaoItem struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	GSI1PK   string `dynamodbav:"gsi1pk,omitempty"`
	GSI1SK   string `dynamodbav:"gsi1sk,omitempty"`
	GSI2PK   string `dynamodbav:"gsi2pk,omitempty"`
	GSI2SK   string `dynamodbav:"gsi2sk,omitempty"`
	TenantID string `dynamodbav:"tenantId"`
	Versao   int64  `dynamodbav:"versao"`

	ID        string `dynamodbav:"id"`
	ClienteID string `dynamodbav:"clienteId"`
	Assunto   string `dynamodbav:"assunto"`
	Descricao string `dynamodbav:"descricao,omitempty"`
	Canal     string `dynamodbav:"canal,omitempty"`
	Data      string `dynamodbav:"data"`

	DataCriacao     string `dynamodbav:"dataCriacao"`
	DataAtualizacao string `dynamodbav:"dataAtualizacao"`
}

// InteracaoRepository persists client interactions.
//
// Keys:
//   - PK: TENANT:<tenantId> / INTERACAO:<id>
//   - GSI1: CLIENTE:<clienteId>
//   - GSI2: TENANT:<tenantId>:DATA:<data> (agenda lookup by day)
type InteracaoRepository struct {
	baseRepository[entities.Interacao, *entities.Interacao]
}

var _ interfaces.IInteracaoRepository = (*InteracaoRepository)(nil)

func NewInteracaoRepository(ddb DynamoAPI, cfg Config) *InteracaoRepository {
	return &InteracaoRepository{baseRepository[entities.Interacao, *entities.Interacao]{
		ddb:       ddb,
		table:     cfg.TableName,
		kind:      "interacao",
		token:     tokenInteracao,
		marshal:   marshalInteracao,
		unmarshal: unmarshalInteracao,
	}}
}

func (r *InteracaoRepository) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Interacao, error) {
	return r.queryIndex(ctx, tenantID, "list-by-cliente", gsi1Name, "gsi1pk",
		parentPartition(tokenCliente, clienteID), nil)
}

func (r *InteracaoRepository) ListByData(ctx context.Context, tenantID, data string) ([]entities.Interacao, error) {
	return r.queryIndex(ctx, tenantID, "list-by-data", gsi2Name, "gsi2pk",
		tenantAttributePartition(tenantID, attrData, data), nil)
}

func (r *InteracaoRepository) Update(ctx context.Context, tenantID, id string, up entities.InteracaoUpdate) (*entities.Interacao, error) {
	return r.update(ctx, tenantID, id, func(i *entities.Interacao) error {
		up.Apply(i)
		return nil
	})
}

func marshalInteracao(i entities.Interacao, tenantID string, versao int64) (map[string]types.AttributeValue, error) {
	sk := entitySortKey(tokenInteracao, i.ID)
	it := interacaoItem{
		PK:              tenantPartition(tenantID),
		SK:              sk,
		TenantID:        tenantID,
		Versao:          versao,
		ID:              i.ID,
		ClienteID:       i.ClienteID,
		Assunto:         i.Assunto,
		Descricao:       i.Descricao,
		Canal:           i.Canal,
		Data:            i.Data,
		DataCriacao:     formatTime(i.DataCriacao),
		DataAtualizacao: formatTime(i.DataAtualizacao),
	}
	if i.ClienteID != "" {
		it.GSI1PK = parentPartition(tokenCliente, i.ClienteID)
		it.GSI1SK = sk
	}
	if i.Data != "" {
		it.GSI2PK = tenantAttributePartition(tenantID, attrData, i.Data)
		it.GSI2SK = sk
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalInteracao(raw map[string]types.AttributeValue) (entities.Interacao, error) {
	var it interacaoItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Interacao{}, err
	}
	criado, atualizado, err := parseStamps(it.DataCriacao, it.DataAtualizacao)
	if err != nil {
		return entities.Interacao{}, err
	}
	return entities.Interacao{
		Registro: entities.Registro{
			ID:              it.ID,
			DataCriacao:     criado,
			DataAtualizacao: atualizado,
		},
		ClienteID: it.ClienteID,
		Assunto:   it.Assunto,
		Descricao: it.Descricao,
		Canal:     it.Canal,
		Data:      it.Data,
	}, nil
}
