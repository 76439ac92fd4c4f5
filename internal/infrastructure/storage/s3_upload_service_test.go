package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type stubS3 struct {
	puts []*s3.PutObjectInput
	err  error
}

func (s *stubS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	s.puts = append(s.puts, params)
	if s.err != nil {
		return nil, s.err
	}
	return &s3.PutObjectOutput{}, nil
}

func stageFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("stage file: %v", err)
	}
}

func TestNewS3UploadService(t *testing.T) {
	if _, err := NewS3UploadService(&stubS3{}, Config{}); !errors.Is(err, ErrMissingBucket) {
		t.Fatalf("expected ErrMissingBucket, got %v", err)
	}
}

func TestS3UploadService_Materialize(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads under the client prefix", func(t *testing.T) {
		dir := t.TempDir()
		stageFile(t, dir, "matricula.pdf", "conteudo")

		s3c := &stubS3{}
		svc, err := NewS3UploadService(s3c, Config{Bucket: "docs", Region: "sa-east-1", StagingDir: dir})
		if err != nil {
			t.Fatalf("new: %v", err)
		}

		out, err := svc.Materialize(ctx, interfaces.UploadInput{
			Referencia:  "matricula.pdf",
			NomeArquivo: "matricula.pdf",
			ContentType: "application/pdf",
			TenantID:    "t1",
			Contexto:    interfaces.UploadContext{ClienteID: "c1", ProjetoID: "p1"},
		})
		if err != nil {
			t.Fatalf("materialize: %v", err)
		}

		if !strings.HasPrefix(out.Caminho, "t1/clientes/c1/projetos/p1/") {
			t.Fatalf("unexpected key: %s", out.Caminho)
		}
		if !strings.HasSuffix(out.Caminho, ".pdf") || out.Formato != "pdf" {
			t.Fatalf("unexpected format: %+v", out)
		}
		if out.Tamanho != int64(len("conteudo")) {
			t.Fatalf("unexpected size: %d", out.Tamanho)
		}
		if out.URL != "https://docs.s3.sa-east-1.amazonaws.com/"+out.Caminho {
			t.Fatalf("unexpected url: %s", out.URL)
		}

		if len(s3c.puts) != 1 {
			t.Fatalf("expected 1 put, got %d", len(s3c.puts))
		}
		put := s3c.puts[0]
		if *put.Bucket != "docs" || *put.ContentType != "application/pdf" {
			t.Fatalf("unexpected put: %+v", put)
		}
	})

	t.Run("public base url wins", func(t *testing.T) {
		dir := t.TempDir()
		stageFile(t, dir, "foto.jpg", "x")

		svc, err := NewS3UploadService(&stubS3{}, Config{
			Bucket: "docs", StagingDir: dir, PublicBaseURL: "https://cdn.example.com/",
		})
		if err != nil {
			t.Fatalf("new: %v", err)
		}

		out, err := svc.Materialize(ctx, interfaces.UploadInput{
			Referencia: "foto.jpg",
			TenantID:   "t1",
			Contexto:   interfaces.UploadContext{ClienteID: "c1", VisitaID: "v1"},
		})
		if err != nil {
			t.Fatalf("materialize: %v", err)
		}
		if !strings.HasPrefix(out.URL, "https://cdn.example.com/t1/clientes/c1/visitas/v1/") {
			t.Fatalf("unexpected url: %s", out.URL)
		}
	})

	t.Run("requires an owning client", func(t *testing.T) {
		svc, err := NewS3UploadService(&stubS3{}, Config{Bucket: "docs"})
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		_, err = svc.Materialize(ctx, interfaces.UploadInput{Referencia: "x.pdf", TenantID: "t1"})
		if !errors.Is(err, ErrMissingContext) {
			t.Fatalf("expected ErrMissingContext, got %v", err)
		}
	})

	t.Run("rejects escaping references", func(t *testing.T) {
		svc, err := NewS3UploadService(&stubS3{}, Config{Bucket: "docs", StagingDir: t.TempDir()})
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		for _, ref := range []string{"", "/etc/passwd", "../segredo.txt"} {
			if _, err := svc.Materialize(ctx, interfaces.UploadInput{
				Referencia: ref, TenantID: "t1",
				Contexto: interfaces.UploadContext{ClienteID: "c1"},
			}); !errors.Is(err, ErrInvalidRef) {
				t.Fatalf("ref %q: expected ErrInvalidRef, got %v", ref, err)
			}
		}
	})
}
