package repository

import (
	"context"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type simulacaoItem struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	GSI1PK   string `dynamodbav:"gsi1pk,omitempty"`
	GSI1SK   string `dynamodbav:"gsi1sk,omitempty"`
	GSI2PK   string `dynamodbav:"gsi2pk,omitempty"`
	GSI2SK   string `dynamodbav:"gsi2sk,omitempty"`
	TenantID string `dynamodbav:"tenantId"`
	Versao   int64  `dynamodbav:"versao"`

	ID                 string  `dynamodbav:"id"`
	ClienteID          string  `dynamodbav:"clienteId,omitempty"`
	ProjetoID          string  `dynamodbav:"projetoId,omitempty"`
	LinhaCredito       string  `dynamodbav:"linhaCredito"`
	ValorFinanciamento float64 `dynamodbav:"valorFinanciamento"`
	TaxaJuros          float64 `dynamodbav:"taxaJuros"`
	PrazoMeses         int     `dynamodbav:"prazoMeses"`
	CarenciaMeses      int     `dynamodbav:"carenciaMeses,omitempty"`
	ParcelaEstimada    float64 `dynamodbav:"parcelaEstimada,omitempty"`

	DataCriacao     string `dynamodbav:"dataCriacao"`
	DataAtualizacao string `dynamodbav:"dataAtualizacao"`
}

// SimulacaoRepository persists financing simulations.
//
// Keys:
//   - PK: TENANT:<tenantId> / SIMULACAO:<id>
//   - GSI1: CLIENTE:<clienteId> (sparse; anonymous simulations carry no key)
//   - GSI2: TENANT:<tenantId>:LINHA_CREDITO:<linhaCredito>
type SimulacaoRepository struct {
	baseRepository[entities.Simulacao, *entities.Simulacao]
}

var _ interfaces.ISimulacaoRepository = (*SimulacaoRepository)(nil)

func NewSimulacaoRepository(ddb DynamoAPI, cfg Config) *SimulacaoRepository {
	return &SimulacaoRepository{baseRepository[entities.Simulacao, *entities.Simulacao]{
		ddb:       ddb,
		table:     cfg.TableName,
		kind:      "simulacao",
		token:     tokenSimulacao,
		marshal:   marshalSimulacao,
		unmarshal: unmarshalSimulacao,
	}}
}

func (r *SimulacaoRepository) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Simulacao, error) {
	return r.queryIndex(ctx, tenantID, "list-by-cliente", gsi1Name, "gsi1pk",
		parentPartition(tokenCliente, clienteID), nil)
}

func (r *SimulacaoRepository) ListByLinhaCredito(ctx context.Context, tenantID, linhaCredito string) ([]entities.Simulacao, error) {
	return r.queryIndex(ctx, tenantID, "list-by-linha-credito", gsi2Name, "gsi2pk",
		tenantAttributePartition(tenantID, attrLinhaCredito, linhaCredito), nil)
}

func (r *SimulacaoRepository) Update(ctx context.Context, tenantID, id string, up entities.SimulacaoUpdate) (*entities.Simulacao, error) {
	return r.update(ctx, tenantID, id, func(s *entities.Simulacao) error {
		up.Apply(s)
		return nil
	})
}

func marshalSimulacao(s entities.Simulacao, tenantID string, versao int64) (map[string]types.AttributeValue, error) {
	sk := entitySortKey(tokenSimulacao, s.ID)
	it := simulacaoItem{
		PK:                 tenantPartition(tenantID),
		SK:                 sk,
		TenantID:           tenantID,
		Versao:             versao,
		ID:                 s.ID,
		ClienteID:          s.ClienteID,
		ProjetoID:          s.ProjetoID,
		LinhaCredito:       s.LinhaCredito,
		ValorFinanciamento: s.ValorFinanciamento,
		TaxaJuros:          s.TaxaJuros,
		PrazoMeses:         s.PrazoMeses,
		CarenciaMeses:      s.CarenciaMeses,
		ParcelaEstimada:    s.ParcelaEstimada,
		DataCriacao:        formatTime(s.DataCriacao),
		DataAtualizacao:    formatTime(s.DataAtualizacao),
	}
	if s.ClienteID != "" {
		it.GSI1PK = parentPartition(tokenCliente, s.ClienteID)
		it.GSI1SK = sk
	}
	if s.LinhaCredito != "" {
		it.GSI2PK = tenantAttributePartition(tenantID, attrLinhaCredito, s.LinhaCredito)
		it.GSI2SK = sk
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalSimulacao(raw map[string]types.AttributeValue) (entities.Simulacao, error) {
	var it simulacaoItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Simulacao{}, err
	}
	criado, atualizado, err := parseStamps(it.DataCriacao, it.DataAtualizacao)
	if err != nil {
		return entities.Simulacao{}, err
	}
	return entities.Simulacao{
		Registro: entities.Registro{
			ID:              it.ID,
			DataCriacao:     criado,
			DataAtualizacao: atualizado,
		},
		ClienteID:          it.ClienteID,
		ProjetoID:          it.ProjetoID,
		LinhaCredito:       it.LinhaCredito,
		ValorFinanciamento: it.ValorFinanciamento,
		TaxaJuros:          it.TaxaJuros,
		PrazoMeses:         it.PrazoMeses,
		CarenciaMeses:      it.CarenciaMeses,
		ParcelaEstimada:    it.ParcelaEstimada,
	}, nil
}
