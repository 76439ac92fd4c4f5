package repository

import (
	"context"
	"testing"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
)

func TestInteracaoRepository_ListByData(t *testing.T) {
	ctx := context.Background()
	repo := NewInteracaoRepository(newFakeDynamo(), Config{TableName: "crm"})

	if _, err := repo.Create(ctx, "t1", entities.Interacao{ClienteID: "c1", Assunto: "Ligacao", Data: "2026-03-10"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, "t1", entities.Interacao{ClienteID: "c2", Assunto: "Visita", Data: "2026-03-10"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, "t1", entities.Interacao{ClienteID: "c1", Assunto: "Email", Data: "2026-03-11"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, "t2", entities.Interacao{ClienteID: "c9", Assunto: "Reuniao", Data: "2026-03-10"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := repo.ListByData(ctx, "t1", "2026-03-10")
	if err != nil {
		t.Fatalf("list by data: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 interacoes, got %+v", list)
	}
	for _, i := range list {
		if i.Data != "2026-03-10" || i.Assunto == "Reuniao" {
			t.Fatalf("unexpected interacao: %+v", i)
		}
	}

	byCliente, err := repo.ListByCliente(ctx, "t1", "c1")
	if err != nil {
		t.Fatalf("list by cliente: %v", err)
	}
	if len(byCliente) != 2 {
		t.Fatalf("expected 2 interacoes for c1, got %+v", byCliente)
	}
}
