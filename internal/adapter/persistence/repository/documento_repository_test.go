package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"
)

// stubUploads records the inputs it saw and answers with a canned output.
type stubUploads struct {
	calls []interfaces.UploadInput
	out   interfaces.UploadOutput
	err   error
}

func (s *stubUploads) Materialize(_ context.Context, in interfaces.UploadInput) (interfaces.UploadOutput, error) {
	s.calls = append(s.calls, in)
	return s.out, s.err
}

func TestDocumentoRepository_Create(t *testing.T) {
	ctx := context.Background()
	cfg := Config{TableName: "crm"}

	t.Run("transient reference is materialized", func(t *testing.T) {
		uploads := &stubUploads{out: interfaces.UploadOutput{
			URL:     "https://bucket.s3.amazonaws.com/t1/clientes/c1/abc.pdf",
			Caminho: "t1/clientes/c1/abc.pdf",
			Formato: "application/pdf",
			Tamanho: 2048,
		}}
		repo := NewDocumentoRepository(newFakeDynamo(), cfg, uploads)

		created, err := repo.Create(ctx, "t1", entities.Documento{
			ClienteID: "c1",
			ProjetoID: "p1",
			Nome:      "matricula.pdf",
			Tipo:      "matricula",
			URL:       "staging/matricula.pdf",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.URL != uploads.out.URL || created.Caminho != uploads.out.Caminho {
			t.Fatalf("expected durable reference, got %+v", created)
		}
		if created.Formato != "application/pdf" || created.Tamanho != 2048 {
			t.Fatalf("expected upload metadata, got %+v", created)
		}

		if len(uploads.calls) != 1 {
			t.Fatalf("expected 1 upload, got %d", len(uploads.calls))
		}
		call := uploads.calls[0]
		if call.Referencia != "staging/matricula.pdf" || call.TenantID != "t1" {
			t.Fatalf("unexpected upload input: %+v", call)
		}
		if call.Contexto.ClienteID != "c1" || call.Contexto.ProjetoID != "p1" {
			t.Fatalf("unexpected upload context: %+v", call.Contexto)
		}
	})

	t.Run("durable url passes through", func(t *testing.T) {
		uploads := &stubUploads{}
		repo := NewDocumentoRepository(newFakeDynamo(), cfg, uploads)

		created, err := repo.Create(ctx, "t1", entities.Documento{
			ClienteID: "c1",
			Nome:      "car.pdf",
			Tipo:      "car",
			URL:       "https://example.com/car.pdf",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.URL != "https://example.com/car.pdf" {
			t.Fatalf("unexpected url: %+v", created)
		}
		if len(uploads.calls) != 0 {
			t.Fatalf("expected no upload, got %d", len(uploads.calls))
		}
	})

	t.Run("upload failure aborts the create", func(t *testing.T) {
		uploads := &stubUploads{err: errors.New("bucket offline")}
		ddb := newFakeDynamo()
		repo := NewDocumentoRepository(ddb, cfg, uploads)

		_, err := repo.Create(ctx, "t1", entities.Documento{
			ClienteID: "c1",
			Nome:      "matricula.pdf",
			Tipo:      "matricula",
			URL:       "staging/matricula.pdf",
		})
		if !errors.Is(err, uploads.err) {
			t.Fatalf("expected upload error, got %v", err)
		}
		if len(ddb.items) != 0 {
			t.Fatalf("expected nothing persisted, got %d items", len(ddb.items))
		}
	})

	t.Run("nil upload service keeps the reference", func(t *testing.T) {
		repo := NewDocumentoRepository(newFakeDynamo(), cfg, nil)

		created, err := repo.Create(ctx, "t1", entities.Documento{
			ClienteID: "c1",
			Nome:      "foto.jpg",
			Tipo:      "foto",
			URL:       "staging/foto.jpg",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if created.URL != "staging/foto.jpg" {
			t.Fatalf("unexpected url: %+v", created)
		}
	})
}

func TestDocumentoRepository_Update(t *testing.T) {
	ctx := context.Background()
	cfg := Config{TableName: "crm"}

	t.Run("new transient reference is materialized", func(t *testing.T) {
		uploads := &stubUploads{out: interfaces.UploadOutput{
			URL:     "https://bucket.s3.amazonaws.com/t1/clientes/c1/novo.pdf",
			Caminho: "t1/clientes/c1/novo.pdf",
		}}
		repo := NewDocumentoRepository(newFakeDynamo(), cfg, uploads)

		created, err := repo.Create(ctx, "t1", entities.Documento{
			ClienteID: "c1",
			Nome:      "car.pdf",
			Tipo:      "car",
			URL:       "https://example.com/car.pdf",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		updated, err := repo.Update(ctx, "t1", created.ID, entities.DocumentoUpdate{
			URL: strPtr("staging/car-novo.pdf"),
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.URL != uploads.out.URL || updated.Caminho != uploads.out.Caminho {
			t.Fatalf("expected durable reference, got %+v", updated)
		}
		if len(uploads.calls) != 1 {
			t.Fatalf("expected 1 upload, got %d", len(uploads.calls))
		}
	})

	t.Run("upload failure aborts the update", func(t *testing.T) {
		uploads := &stubUploads{}
		repo := NewDocumentoRepository(newFakeDynamo(), cfg, uploads)

		created, err := repo.Create(ctx, "t1", entities.Documento{
			ClienteID: "c1",
			Nome:      "car.pdf",
			Tipo:      "car",
			URL:       "https://example.com/car.pdf",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		uploads.err = errors.New("bucket offline")
		_, err = repo.Update(ctx, "t1", created.ID, entities.DocumentoUpdate{
			URL: strPtr("staging/car-novo.pdf"),
		})
		if !errors.Is(err, uploads.err) {
			t.Fatalf("expected upload error, got %v", err)
		}

		got, err := repo.GetByID(ctx, "t1", created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.URL != "https://example.com/car.pdf" || got.Caminho != "" {
			t.Fatalf("expected stored documento untouched, got %+v", got)
		}
		if !got.DataAtualizacao.Equal(created.DataAtualizacao) {
			t.Fatalf("expected update timestamp untouched")
		}
	})
}

func TestDocumentoRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	cfg := Config{TableName: "crm"}
	ddb := newFakeDynamo()
	repo := NewDocumentoRepository(ddb, cfg, nil)

	seed := []struct {
		tenant string
		doc    entities.Documento
	}{
		{"t1", entities.Documento{ClienteID: "c1", ProjetoID: "p1", Nome: "matricula.pdf", Tipo: "matricula"}},
		{"t1", entities.Documento{ClienteID: "c1", ProjetoID: "p2", Nome: "car.pdf", Tipo: "car"}},
		{"t1", entities.Documento{ClienteID: "c2", ProjetoID: "p1", Nome: "contrato.pdf", Tipo: "matricula"}},
		{"t2", entities.Documento{ClienteID: "c9", Nome: "alheio.pdf", Tipo: "matricula"}},
	}
	for _, s := range seed {
		if _, err := repo.Create(ctx, s.tenant, s.doc); err != nil {
			t.Fatalf("create %s: %v", s.doc.Nome, err)
		}
	}

	t.Run("by projeto filters the tenant partition", func(t *testing.T) {
		list, err := repo.ListByProjeto(ctx, "t1", "p1")
		if err != nil {
			t.Fatalf("list by projeto: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 documentos for p1, got %+v", list)
		}
		for _, d := range list {
			if d.ProjetoID != "p1" {
				t.Fatalf("unexpected projeto: %+v", d)
			}
		}
	})

	t.Run("by tipo never leaks across tenants", func(t *testing.T) {
		list, err := repo.ListByTipo(ctx, "t1", "matricula")
		if err != nil {
			t.Fatalf("list by tipo: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 documentos, got %+v", list)
		}
		for _, d := range list {
			if d.Nome == "alheio.pdf" {
				t.Fatalf("t2 documento leaked: %+v", d)
			}
		}
	})

	t.Run("by cliente", func(t *testing.T) {
		list, err := repo.ListByCliente(ctx, "t1", "c1")
		if err != nil {
			t.Fatalf("list by cliente: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 documentos for c1, got %+v", list)
		}
	})
}
