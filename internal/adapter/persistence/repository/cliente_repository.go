package repository

import (
	"context"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type clienteItem struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	GSI1PK   string `dynamodbav:"gsi1pk,omitempty"`
	GSI1SK   string `dynamodbav:"gsi1sk,omitempty"`
	TenantID string `dynamodbav:"tenantId"`
	Versao   int64  `dynamodbav:"versao"`

	ID             string   `dynamodbav:"id"`
	Nome           string   `dynamodbav:"nome"`
	CpfCnpj        string   `dynamodbav:"cpfCnpj"`
	Email          string   `dynamodbav:"email,omitempty"`
	Telefone       string   `dynamodbav:"telefone,omitempty"`
	Perfil         string   `dynamodbav:"perfil,omitempty"`
	DataNascimento string   `dynamodbav:"dataNascimento,omitempty"`
	Propriedades   []string `dynamodbav:"propriedades,omitempty"`
	Interacoes     []string `dynamodbav:"interacoes,omitempty"`

	DataCriacao     string `dynamodbav:"dataCriacao"`
	DataAtualizacao string `dynamodbav:"dataAtualizacao"`
}

// ClienteRepository persists clients in the shared CRM table.
//
// Keys:
//   - PK: TENANT:<tenantId> / CLIENTE:<id>
//   - GSI1: TENANT:<tenantId>:CPF_CNPJ:<cpfCnpj> (tax-id lookup; the parent
//     slot is free since clients have no parent)
type ClienteRepository struct {
	baseRepository[entities.Cliente, *entities.Cliente]
}

var _ interfaces.IClienteRepository = (*ClienteRepository)(nil)

func NewClienteRepository(ddb DynamoAPI, cfg Config) *ClienteRepository {
	return &ClienteRepository{baseRepository[entities.Cliente, *entities.Cliente]{
		ddb:       ddb,
		table:     cfg.TableName,
		kind:      "cliente",
		token:     tokenCliente,
		marshal:   marshalCliente,
		unmarshal: unmarshalCliente,
	}}
}

func (r *ClienteRepository) GetByCpfCnpj(ctx context.Context, tenantID, cpfCnpj string) (*entities.Cliente, error) {
	items, err := r.queryIndex(ctx, tenantID, "get-by-cpf-cnpj", gsi1Name, "gsi1pk",
		tenantAttributePartition(tenantID, attrCpfCnpj, cpfCnpj), nil)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *ClienteRepository) Update(ctx context.Context, tenantID, id string, up entities.ClienteUpdate) (*entities.Cliente, error) {
	return r.update(ctx, tenantID, id, func(c *entities.Cliente) error {
		up.Apply(c)
		return nil
	})
}

func marshalCliente(c entities.Cliente, tenantID string, versao int64) (map[string]types.AttributeValue, error) {
	sk := entitySortKey(tokenCliente, c.ID)
	it := clienteItem{
		PK:              tenantPartition(tenantID),
		SK:              sk,
		TenantID:        tenantID,
		Versao:          versao,
		ID:              c.ID,
		Nome:            c.Nome,
		CpfCnpj:         c.CpfCnpj,
		Email:           c.Email,
		Telefone:        c.Telefone,
		Perfil:          string(c.Perfil),
		DataNascimento:  c.DataNascimento,
		Propriedades:    c.Propriedades,
		Interacoes:      c.Interacoes,
		DataCriacao:     formatTime(c.DataCriacao),
		DataAtualizacao: formatTime(c.DataAtualizacao),
	}
	if c.CpfCnpj != "" {
		it.GSI1PK = tenantAttributePartition(tenantID, attrCpfCnpj, c.CpfCnpj)
		it.GSI1SK = sk
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalCliente(raw map[string]types.AttributeValue) (entities.Cliente, error) {
	var it clienteItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Cliente{}, err
	}
	criado, atualizado, err := parseStamps(it.DataCriacao, it.DataAtualizacao)
	if err != nil {
		return entities.Cliente{}, err
	}
	return entities.Cliente{
		Registro: entities.Registro{
			ID:              it.ID,
			DataCriacao:     criado,
			DataAtualizacao: atualizado,
		},
		Nome:           it.Nome,
		CpfCnpj:        it.CpfCnpj,
		Email:          it.Email,
		Telefone:       it.Telefone,
		Perfil:         entities.PerfilCliente(it.Perfil),
		DataNascimento: it.DataNascimento,
		Propriedades:   it.Propriedades,
		Interacoes:     it.Interacoes,
	}, nil
}
