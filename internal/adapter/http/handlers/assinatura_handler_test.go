package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/http/handlers/mocks"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func assinaturaRouter(h *AssinaturaHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/assinaturas", h.Create)
	return r
}

func TestAssinaturaHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssinaturaUseCase(ctrl)
		r := assinaturaRouter(NewAssinaturaHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/assinaturas", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssinaturaUseCase(ctrl)
		r := assinaturaRouter(NewAssinaturaHandler(uc))

		uc.EXPECT().Subscribe(gomock.Any(), "t1", "user@example.com", "Maria", "12345678900", "enterprise", "tok").
			Return(usecase.AssinaturaResult{}, usecase.ErrInvalidPlano)

		body := `{"tenantId":"t1","email":"user@example.com","nome":"Maria","cpfCnpj":"12345678900","plano":"enterprise","cardTokenId":"tok"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/assinaturas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("provider error maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssinaturaUseCase(ctrl)
		r := assinaturaRouter(NewAssinaturaHandler(uc))

		uc.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.AssinaturaResult{}, errors.New("mp down"))

		body := `{"tenantId":"t1","email":"user@example.com","plano":"basico"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/assinaturas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssinaturaUseCase(ctrl)
		r := assinaturaRouter(NewAssinaturaHandler(uc))

		uc.EXPECT().Subscribe(gomock.Any(), "t1", "user@example.com", "Maria", "12345678900", "basico", "tok").
			Return(usecase.AssinaturaResult{CustomerID: "cus-1", SubscriptionID: "sub-1", Status: "authorized"}, nil)

		body := `{"tenantId":"t1","email":"user@example.com","nome":"Maria","cpfCnpj":"12345678900","plano":"basico","cardTokenId":"tok"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/assinaturas", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got["subscriptionId"] != "sub-1" || got["status"] != "authorized" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
