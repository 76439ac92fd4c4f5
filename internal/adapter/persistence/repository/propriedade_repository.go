package repository

import (
	"context"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type coordenadasItem struct {
	Latitude  float64 `dynamodbav:"latitude"`
	Longitude float64 `dynamodbav:"longitude"`
}

type propriedadeItem struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	GSI1PK   string `dynamodbav:"gsi1pk,omitempty"`
	GSI1SK   string `dynamodbav:"gsi1sk,omitempty"`
	GSI2PK   string `dynamodbav:"gsi2pk,omitempty"`
	GSI2SK   string `dynamodbav:"gsi2sk,omitempty"`
	TenantID string `dynamodbav:"tenantId"`
	Versao   int64  `dynamodbav:"versao"`

	ID          string           `dynamodbav:"id"`
	ClienteID   string           `dynamodbav:"clienteId"`
	Nome        string           `dynamodbav:"nome"`
	Municipio   string           `dynamodbav:"municipio"`
	Estado      string           `dynamodbav:"estado,omitempty"`
	AreaTotal   float64          `dynamodbav:"areaTotal,omitempty"`
	Coordenadas *coordenadasItem `dynamodbav:"coordenadas,omitempty"`

	DataCriacao     string `dynamodbav:"dataCriacao"`
	DataAtualizacao string `dynamodbav:"dataAtualizacao"`
}

// PropriedadeRepository persists rural properties.
//
// Keys:
//   - PK: TENANT:<tenantId> / PROPRIEDADE:<id>
//   - GSI1: CLIENTE:<clienteId>
//   - GSI2: TENANT:<tenantId>:MUNICIPIO:<municipio>
type PropriedadeRepository struct {
	baseRepository[entities.Propriedade, *entities.Propriedade]
}

var _ interfaces.IPropriedadeRepository = (*PropriedadeRepository)(nil)

func NewPropriedadeRepository(ddb DynamoAPI, cfg Config) *PropriedadeRepository {
	return &PropriedadeRepository{baseRepository[entities.Propriedade, *entities.Propriedade]{
		ddb:       ddb,
		table:     cfg.TableName,
		kind:      "propriedade",
		token:     tokenPropriedade,
		marshal:   marshalPropriedade,
		unmarshal: unmarshalPropriedade,
	}}
}

func (r *PropriedadeRepository) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Propriedade, error) {
	return r.queryIndex(ctx, tenantID, "list-by-cliente", gsi1Name, "gsi1pk",
		parentPartition(tokenCliente, clienteID), nil)
}

func (r *PropriedadeRepository) ListByMunicipio(ctx context.Context, tenantID, municipio string) ([]entities.Propriedade, error) {
	return r.queryIndex(ctx, tenantID, "list-by-municipio", gsi2Name, "gsi2pk",
		tenantAttributePartition(tenantID, attrMunicipio, municipio), nil)
}

func (r *PropriedadeRepository) Update(ctx context.Context, tenantID, id string, up entities.PropriedadeUpdate) (*entities.Propriedade, error) {
	return r.update(ctx, tenantID, id, func(p *entities.Propriedade) error {
		up.Apply(p)
		return nil
	})
}

func marshalPropriedade(p entities.Propriedade, tenantID string, versao int64) (map[string]types.AttributeValue, error) {
	sk := entitySortKey(tokenPropriedade, p.ID)
	it := propriedadeItem{
		PK:              tenantPartition(tenantID),
		SK:              sk,
		TenantID:        tenantID,
		Versao:          versao,
		ID:              p.ID,
		ClienteID:       p.ClienteID,
		Nome:            p.Nome,
		Municipio:       p.Municipio,
		Estado:          p.Estado,
		AreaTotal:       p.AreaTotal,
		DataCriacao:     formatTime(p.DataCriacao),
		DataAtualizacao: formatTime(p.DataAtualizacao),
	}
	if p.Coordenadas != nil {
		it.Coordenadas = &coordenadasItem{Latitude: p.Coordenadas.Latitude, Longitude: p.Coordenadas.Longitude}
	}
	if p.ClienteID != "" {
		it.GSI1PK = parentPartition(tokenCliente, p.ClienteID)
		it.GSI1SK = sk
	}
	if p.Municipio != "" {
		it.GSI2PK = tenantAttributePartition(tenantID, attrMunicipio, p.Municipio)
		it.GSI2SK = sk
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalPropriedade(raw map[string]types.AttributeValue) (entities.Propriedade, error) {
	var it propriedadeItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Propriedade{}, err
	}
	criado, atualizado, err := parseStamps(it.DataCriacao, it.DataAtualizacao)
	if err != nil {
		return entities.Propriedade{}, err
	}
	p := entities.Propriedade{
		Registro: entities.Registro{
			ID:              it.ID,
			DataCriacao:     criado,
			DataAtualizacao: atualizado,
		},
		ClienteID: it.ClienteID,
		Nome:      it.Nome,
		Municipio: it.Municipio,
		Estado:    it.Estado,
		AreaTotal: it.AreaTotal,
	}
	if it.Coordenadas != nil {
		p.Coordenadas = &entities.Coordenadas{Latitude: it.Coordenadas.Latitude, Longitude: it.Coordenadas.Longitude}
	}
	return p, nil
}
