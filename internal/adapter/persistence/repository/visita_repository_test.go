package repository

import (
	"context"
	"testing"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
)

func TestVisitaRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg := Config{TableName: "crm"}
	repo := NewVisitaRepository(newFakeDynamo(), cfg)

	created, err := repo.Create(ctx, "t1", entities.Visita{
		ClienteID:     "c1",
		PropriedadeID: "p1",
		ProjetoID:     "pr1",
		Data:          "2026-04-02",
		Status:        entities.VisitaAgendada,
		Observacoes:   "Vistoria da area de plantio",
		Fotos:         []string{"fotos/porteira.jpg", "fotos/talhao.jpg"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, "t1", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatalf("expected visita")
	}
	if got.ClienteID != "c1" || got.PropriedadeID != "p1" || got.ProjetoID != "pr1" {
		t.Fatalf("unexpected references: %+v", got)
	}
	if got.Data != "2026-04-02" || got.Status != entities.VisitaAgendada {
		t.Fatalf("unexpected schedule: %+v", got)
	}
	if got.Observacoes != "Vistoria da area de plantio" {
		t.Fatalf("unexpected observacoes: %+v", got)
	}
	if len(got.Fotos) != 2 || got.Fotos[0] != "fotos/porteira.jpg" || got.Fotos[1] != "fotos/talhao.jpg" {
		t.Fatalf("unexpected fotos: %+v", got.Fotos)
	}
	if !got.DataCriacao.Equal(created.DataCriacao) || !got.DataAtualizacao.Equal(created.DataAtualizacao) {
		t.Fatalf("timestamps changed across the round trip: %+v vs %+v", got.Registro, created.Registro)
	}

	status := entities.VisitaRealizada
	updated, err := repo.Update(ctx, "t1", created.ID, entities.VisitaUpdate{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != entities.VisitaRealizada {
		t.Fatalf("expected status applied, got %+v", updated)
	}
	if updated.Observacoes != "Vistoria da area de plantio" || len(updated.Fotos) != 2 {
		t.Fatalf("expected omitted fields preserved, got %+v", updated)
	}
}

func TestVisitaRepository_ListByCliente(t *testing.T) {
	ctx := context.Background()
	cfg := Config{TableName: "crm"}
	repo := NewVisitaRepository(newFakeDynamo(), cfg)

	seed := []entities.Visita{
		{ClienteID: "c1", PropriedadeID: "p1", Data: "2026-04-02"},
		{ClienteID: "c1", PropriedadeID: "p2", Data: "2026-04-09"},
		{ClienteID: "c2", PropriedadeID: "p3", Data: "2026-04-02"},
	}
	for _, v := range seed {
		if _, err := repo.Create(ctx, "t1", v); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	list, err := repo.ListByCliente(ctx, "t1", "c1")
	if err != nil {
		t.Fatalf("list by cliente: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 visitas for c1, got %+v", list)
	}
	for _, v := range list {
		if v.ClienteID != "c1" {
			t.Fatalf("unexpected cliente: %+v", v)
		}
	}
}
