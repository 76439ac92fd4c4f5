package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces"
	mock_interfaces "github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAssinaturaUseCase_Subscribe(t *testing.T) {
	t.Run("invalid tenant id", func(t *testing.T) {
		uc := NewAssinaturaUseCase(nil)
		_, err := uc.Subscribe(context.Background(), "   ", "user@example.com", "Maria", "12345678900", "basico", "tok")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewAssinaturaUseCase(nil)
		_, err := uc.Subscribe(context.Background(), "t1", "not-an-email", "Maria", "12345678900", "basico", "tok")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("unknown plano", func(t *testing.T) {
		uc := NewAssinaturaUseCase(nil)
		_, err := uc.Subscribe(context.Background(), "t1", "user@example.com", "Maria", "12345678900", "enterprise", "tok")
		if !errors.Is(err, ErrInvalidPlano) {
			t.Fatalf("expected ErrInvalidPlano, got %v", err)
		}
	})

	t.Run("create customer error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIBillingGateway(ctrl)
		uc := NewAssinaturaUseCase(gateway)

		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(interfaces.CustomerOutput{}, errors.New("mp down"))

		_, err := uc.Subscribe(context.Background(), "t1", "user@example.com", "Maria", "12345678900", "basico", "tok")
		if err == nil || err.Error() != "mp down" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("create subscription error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIBillingGateway(ctrl)
		uc := NewAssinaturaUseCase(gateway)

		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(interfaces.CustomerOutput{CustomerID: "cus-1"}, nil)
		gateway.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).Return(interfaces.SubscriptionOutput{}, errors.New("declined"))

		_, err := uc.Subscribe(context.Background(), "t1", "user@example.com", "Maria", "12345678900", "basico", "tok")
		if err == nil || err.Error() != "declined" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("success normalizes plano and wires the tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIBillingGateway(ctrl)
		uc := NewAssinaturaUseCase(gateway)

		gateway.EXPECT().CreateCustomer(gomock.Any(), interfaces.CustomerInput{
			Email: "user@example.com", Nome: "Maria", CpfCnpj: "12345678900",
		}).Return(interfaces.CustomerOutput{CustomerID: "cus-1"}, nil)

		gateway.EXPECT().CreateSubscription(gomock.Any(), gomock.AssignableToTypeOf(interfaces.SubscriptionInput{})).DoAndReturn(
			func(_ context.Context, in interfaces.SubscriptionInput) (interfaces.SubscriptionOutput, error) {
				if in.CustomerID != "cus-1" || in.TenantID != "t1" || in.CardTokenID != "tok" {
					t.Fatalf("unexpected subscription input: %+v", in)
				}
				if in.Plano != "profissional" || in.Valor != 99.90 {
					t.Fatalf("unexpected plano: %+v", in)
				}
				return interfaces.SubscriptionOutput{SubscriptionID: "sub-1", Status: "authorized", InitPoint: "https://mp/init"}, nil
			},
		)

		res, err := uc.Subscribe(context.Background(), "t1", "user@example.com", "Maria", "12345678900", " Profissional ", "tok")
		if err != nil {
			t.Fatalf("subscribe: %v", err)
		}
		if res.CustomerID != "cus-1" || res.SubscriptionID != "sub-1" || res.Status != "authorized" || res.InitPoint != "https://mp/init" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
