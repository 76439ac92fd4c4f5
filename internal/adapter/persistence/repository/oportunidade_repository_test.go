package repository

import (
	"context"
	"testing"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
)

func TestOportunidadeRepository_ListByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOportunidadeRepository(newFakeDynamo(), Config{TableName: "crm"})

	if _, err := repo.Create(ctx, "t1", entities.Oportunidade{ClienteID: "c1", Titulo: "Custeio 2026", Status: entities.OportunidadeProposta}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, "t1", entities.Oportunidade{ClienteID: "c2", Titulo: "Trator novo", Status: entities.OportunidadeProspeccao}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, "t2", entities.Oportunidade{ClienteID: "c9", Titulo: "Alheia", Status: entities.OportunidadeProposta}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := repo.ListByStatus(ctx, "t1", entities.OportunidadeProposta)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(list) != 1 || list[0].Titulo != "Custeio 2026" {
		t.Fatalf("expected only the t1 proposta, got %+v", list)
	}
}

func TestOportunidadeRepository_StatusMove(t *testing.T) {
	ctx := context.Background()
	repo := NewOportunidadeRepository(newFakeDynamo(), Config{TableName: "crm"})

	created, err := repo.Create(ctx, "t1", entities.Oportunidade{ClienteID: "c1", Titulo: "Custeio 2026", Status: entities.OportunidadeProposta})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := entities.OportunidadeNegociacao
	if _, err := repo.Update(ctx, "t1", created.ID, entities.OportunidadeUpdate{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	old, err := repo.ListByStatus(ctx, "t1", entities.OportunidadeProposta)
	if err != nil {
		t.Fatalf("list old status: %v", err)
	}
	if len(old) != 0 {
		t.Fatalf("expected the old partition to be empty, got %+v", old)
	}

	moved, err := repo.ListByStatus(ctx, "t1", entities.OportunidadeNegociacao)
	if err != nil {
		t.Fatalf("list new status: %v", err)
	}
	if len(moved) != 1 || moved[0].ID != created.ID {
		t.Fatalf("expected the oportunidade in the new partition, got %+v", moved)
	}
}
