package repository

import (
	"context"
	"mime"
	"path/filepath"
	"strings"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type documentoItem struct {
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
	ProjetoID string `dynamodbav:"projetoId,omitempty"`
	VisitaID  string `dynamodbav:"visitaId,omitempty"`
	Nome      string `dynamodbav:"nome"`
	Tipo      string `dynamodbav:"tipo"`
	Formato   string `dynamodbav:"formato,omitempty"`
	URL       string `dynamodbav:"url,omitempty"`
	Caminho   string `dynamodbav:"caminho,omitempty"`
	Tamanho   int64  `dynamodbav:"tamanho,omitempty"`

	DataCriacao     string `dynamodbav:"dataCriacao"`
	DataAtualizacao string `dynamodbav:"dataAtualizacao"`
}

// DocumentoRepository persists documents and materializes transient file
// references through the upload service before writing.
//
// Keys:
//   - PK: TENANT:<tenantId> / DOCUMENTO:<id>
//   - GSI1: CLIENTE:<clienteId>
//   - GSI2: TIPO:<tipo> (global attribute space; queries filter on the
//     tenant tag to keep the result tenant-scoped)
//
// "Documents of a project" has no index slot left; ListByProjeto scans the
// tenant partition and filters on projetoId. Document volume per tenant is
// small enough that the scan stays bounded.
type DocumentoRepository struct {
	baseRepository[entities.Documento, *entities.Documento]
	uploads interfaces.IUploadService
}

var _ interfaces.IDocumentoRepository = (*DocumentoRepository)(nil)

func NewDocumentoRepository(ddb DynamoAPI, cfg Config, uploads interfaces.IUploadService) *DocumentoRepository {
	return &DocumentoRepository{
		baseRepository: baseRepository[entities.Documento, *entities.Documento]{
			ddb:       ddb,
			table:     cfg.TableName,
			kind:      "documento",
			token:     tokenDocumento,
			marshal:   marshalDocumento,
			unmarshal: unmarshalDocumento,
		},
		uploads: uploads,
	}
}

func (r *DocumentoRepository) ListByCliente(ctx context.Context, tenantID, clienteID string) ([]entities.Documento, error) {
	return r.queryIndex(ctx, tenantID, "list-by-cliente", gsi1Name, "gsi1pk",
		parentPartition(tokenCliente, clienteID), nil)
}

func (r *DocumentoRepository) ListByTipo(ctx context.Context, tenantID, tipo string) ([]entities.Documento, error) {
	return r.queryIndex(ctx, tenantID, "list-by-tipo", gsi2Name, "gsi2pk",
		attributePartition(attrTipo, tipo), &equalsFilter{attr: "tenantId", value: tenantID})
}

func (r *DocumentoRepository) ListByProjeto(ctx context.Context, tenantID, projetoID string) ([]entities.Documento, error) {
	return r.listFiltered(ctx, tenantID, "list-by-projeto", &equalsFilter{attr: "projetoId", value: projetoID})
}

func (r *DocumentoRepository) Create(ctx context.Context, tenantID string, d entities.Documento) (*entities.Documento, error) {
	if err := r.materialize(ctx, tenantID, &d); err != nil {
		return nil, r.wrap("create", err)
	}
	return r.baseRepository.Create(ctx, tenantID, d)
}

func (r *DocumentoRepository) Update(ctx context.Context, tenantID, id string, up entities.DocumentoUpdate) (*entities.Documento, error) {
	return r.update(ctx, tenantID, id, func(d *entities.Documento) error {
		up.Apply(d)
		return r.materialize(ctx, tenantID, d)
	})
}

// materialize swaps a transient local reference in the URL field for a
// durable object-storage URL. Durable URLs pass through untouched.
func (r *DocumentoRepository) materialize(ctx context.Context, tenantID string, d *entities.Documento) error {
	if r.uploads == nil || !isTransientRef(d.URL) {
		return nil
	}

	out, err := r.uploads.Materialize(ctx, interfaces.UploadInput{
		Referencia:  d.URL,
		NomeArquivo: d.Nome,
		ContentType: mime.TypeByExtension(filepath.Ext(d.Nome)),
		TenantID:    tenantID,
		Contexto: interfaces.UploadContext{
			ClienteID: d.ClienteID,
			ProjetoID: d.ProjetoID,
			VisitaID:  d.VisitaID,
		},
	})
	if err != nil {
		return err
	}

	d.URL = out.URL
	d.Caminho = out.Caminho
	if out.Formato != "" {
		d.Formato = out.Formato
	}
	if out.Tamanho > 0 {
		d.Tamanho = out.Tamanho
	}
	return nil
}

func isTransientRef(url string) bool {
	if url == "" {
		return false
	}
	return !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://")
}

func marshalDocumento(d entities.Documento, tenantID string, versao int64) (map[string]types.AttributeValue, error) {
	sk := entitySortKey(tokenDocumento, d.ID)
	it := documentoItem{
		PK:              tenantPartition(tenantID),
		SK:              sk,
		TenantID:        tenantID,
		Versao:          versao,
		ID:              d.ID,
		ClienteID:       d.ClienteID,
		ProjetoID:       d.ProjetoID,
		VisitaID:        d.VisitaID,
		Nome:            d.Nome,
		Tipo:            d.Tipo,
		Formato:         d.Formato,
		URL:             d.URL,
		Caminho:         d.Caminho,
		Tamanho:         d.Tamanho,
		DataCriacao:     formatTime(d.DataCriacao),
		DataAtualizacao: formatTime(d.DataAtualizacao),
	}
	if d.ClienteID != "" {
		it.GSI1PK = parentPartition(tokenCliente, d.ClienteID)
		it.GSI1SK = sk
	}
	if d.Tipo != "" {
		it.GSI2PK = attributePartition(attrTipo, d.Tipo)
		it.GSI2SK = sk
	}
	return attributevalue.MarshalMap(it)
}

func unmarshalDocumento(raw map[string]types.AttributeValue) (entities.Documento, error) {
	var it documentoItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Documento{}, err
	}
	criado, atualizado, err := parseStamps(it.DataCriacao, it.DataAtualizacao)
	if err != nil {
		return entities.Documento{}, err
	}
	return entities.Documento{
		Registro: entities.Registro{
			ID:              it.ID,
			DataCriacao:     criado,
			DataAtualizacao: atualizado,
		},
		ClienteID: it.ClienteID,
		ProjetoID: it.ProjetoID,
		VisitaID:  it.VisitaID,
		Nome:      it.Nome,
		Tipo:      it.Tipo,
		Formato:   it.Formato,
		URL:       it.URL,
		Caminho:   it.Caminho,
		Tamanho:   it.Tamanho,
	}, nil
}
