package repository

import (
	"context"
	"testing"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
)

func TestSimulacaoRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := NewSimulacaoRepository(newFakeDynamo(), Config{TableName: "crm"})

	// A standalone simulation: no owning client.
	if _, err := repo.Create(ctx, "t1", entities.Simulacao{
		LinhaCredito: "pronaf", ValorFinanciamento: 80000, TaxaJuros: 4.5, PrazoMeses: 60,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	linked, err := repo.Create(ctx, "t1", entities.Simulacao{
		ClienteID: "c1", LinhaCredito: "pronamp", ValorFinanciamento: 250000, TaxaJuros: 6.0, PrazoMeses: 96,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, "t2", entities.Simulacao{
		ClienteID: "c9", LinhaCredito: "pronaf", ValorFinanciamento: 50000, TaxaJuros: 4.5, PrazoMeses: 36,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("list returns standalone and linked", func(t *testing.T) {
		list, err := repo.List(ctx, "t1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 simulacoes, got %+v", list)
		}
	})

	t.Run("by cliente skips standalone simulations", func(t *testing.T) {
		list, err := repo.ListByCliente(ctx, "t1", "c1")
		if err != nil {
			t.Fatalf("list by cliente: %v", err)
		}
		if len(list) != 1 || list[0].ID != linked.ID {
			t.Fatalf("expected only the linked simulacao, got %+v", list)
		}
	})

	t.Run("by linha de credito is tenant scoped", func(t *testing.T) {
		list, err := repo.ListByLinhaCredito(ctx, "t1", "pronaf")
		if err != nil {
			t.Fatalf("list by linha: %v", err)
		}
		if len(list) != 1 || list[0].ValorFinanciamento != 80000 {
			t.Fatalf("expected only the t1 pronaf simulacao, got %+v", list)
		}
	})
}
