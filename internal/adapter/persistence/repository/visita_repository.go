package repository

import (
	"context"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type visitaItem struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	GSI1PK   string `dynamodbav:"gsi1pk,omitempty"`
	GSI1SK   string `dynamodbav:"gsi1sk,omitempty"`
	TenantID string `dynamodbav:"tenantId"`
	Versao   int64  `dynamodbav:"versao"`

	ID            string   `dynamodbav:"id"`
	ClienteID     string   `dynamodbav:"clienteId"`
	PropriedadeID string   `dynamodbav:"propriedadeId"`
	ProjetoID     string   `dynamodbav:"projetoId,omitempty"`
	Data          string   `dynamodbav:"data"`
	Status        string   `dynamodbav:"status,omitempty"`
	Observacoes   string   `dynamodbav:"observacoes,omitempty"`
	Fotos         []string `dynamodbav:"fotos,omitempty"`

	DataCriacao     string `dynamodbav:"dataCriacao"`
	DataAtualizacao string `dynamodbav:"dataAtualizacao"`
}

// VisitaRepository persists field visits.
//
// Keys:
//   - PK: TENANT:<tenantId> / VISITA:<id>
//   - GSI1: CLIENTE:<clienteId>
type VisitaRepository struct {
	baseRepository[entities.Visita, *entities.Visita]
}

var _ interfaces.IVisitaRepository = (*VisitaRepository)(nil)

func NewVisitaRepository(ddb DynamoAPI, cfg Config) *VisitaRepository {
	return &VisitaRepository{baseRepository[entities.Visita, *entities.Visita]{
		ddb:       ddb,
		table:     cfg.TableName,
		kind:      "visita",
		token:     tokenVisita,
		marshal:   marshalVisita,
		unmarshal: unmarshalVisita,
	}}
}

func (r *VisitaRepository) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Visita, error) {
	return r.queryIndex(ctx, tenantID, "list-by-cliente", gsi1Name, "gsi1pk",
		parentPartition(tokenCliente, clienteID), nil)
}

func (r *VisitaRepository) Update(ctx context.Context, tenantID, id string, up entities.VisitaUpdate) (*entities.Visita, error) {
	return r.update(ctx, tenantID, id, func(v *entities.Visita) error {
		up.Apply(v)
		return nil
	})
}

func marshalVisita(v entities.Visita, tenantID string, versao int64) (map[string]types.AttributeValue, error) {
	sk := entitySortKey(tokenVisita, v.ID)
	it := visitaItem{
		PK:              tenantPartition(tenantID),
		SK:              sk,
		TenantID:        tenantID,
		Versao:          versao,
		ID:              v.ID,
		ClienteID:       v.ClienteID,
		PropriedadeID:   v.PropriedadeID,
		ProjetoID:       v.ProjetoID,
		Data:            v.Data,
		Status:          string(v.Status),
		Observacoes:     v.Observacoes,
		Fotos:           v.Fotos,
		DataCriacao:     formatTime(v.DataCriacao),
		DataAtualizacao: formatTime(v.DataAtualizacao),
	}
	if v.ClienteID != "" {
		it.GSI1PK = parentPartition(tokenCliente, v.ClienteID)
		it.GSI1SK = sk
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalVisita(raw map[string]types.AttributeValue) (entities.Visita, error) {
	var it visitaItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Visita{}, err
	}
	criado, atualizado, err := parseStamps(it.DataCriacao, it.DataAtualizacao)
	if err != nil {
		return entities.Visita{}, err
	}
	return entities.Visita{
		Registro: entities.Registro{
			ID:              it.ID,
			DataCriacao:     criado,
			DataAtualizacao: atualizado,
		},
		ClienteID:     it.ClienteID,
		PropriedadeID: it.PropriedadeID,
		ProjetoID:     it.ProjetoID,
		Data:          it.Data,
		Status:        entities.StatusVisita(it.Status),
		Observacoes:   it.Observacoes,
		Fotos:         it.Fotos,
	}, nil
}
