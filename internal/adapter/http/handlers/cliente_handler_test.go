package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agro-trimobe/rural-credit-app-sub000/internal/adapter/persistence/repository"
	"github.com/agro-trimobe/rural-credit-app-sub000/internal/domain/entities"
	mock_interfaces "github.com/agro-trimobe/rural-credit-app-sub000/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// clienteRouter mounts the handler the way the v1 group does, with the
// tenant already resolved.
func clienteRouter(h *ClienteHandler) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(TenantKey, "t1") })
	r.GET("/v1/clientes", h.List)
	r.POST("/v1/clientes", h.Create)
	r.GET("/v1/clientes/:id", h.Get)
	r.PUT("/v1/clientes/:id", h.Update)
	r.DELETE("/v1/clientes/:id", h.Delete)
	return r
}

func TestClienteHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("tenant listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		r := clienteRouter(NewClienteHandler(repo))

		repo.EXPECT().List(gomock.Any(), "t1").Return([]entities.Cliente{{Nome: "Maria"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/clientes", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []entities.Cliente
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 1 || got[0].Nome != "Maria" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("cpfCnpj filter hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		r := clienteRouter(NewClienteHandler(repo))

		repo.EXPECT().GetByCpfCnpj(gomock.Any(), "t1", "12345678900").Return(&entities.Cliente{Nome: "Maria"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/clientes?cpfCnpj=12345678900", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []entities.Cliente
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected single match, got %s", w.Body.String())
		}
	})

	t.Run("cpfCnpj filter miss yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		r := clienteRouter(NewClienteHandler(repo))

		repo.EXPECT().GetByCpfCnpj(gomock.Any(), "t1", "000").Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/clientes?cpfCnpj=000", nil))

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestClienteHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		r := clienteRouter(NewClienteHandler(repo))

		repo.EXPECT().GetByID(gomock.Any(), "t1", "missing").Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/clientes/missing", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestClienteHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		r := clienteRouter(NewClienteHandler(repo))

		req := httptest.NewRequest(http.MethodPost, "/v1/clientes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		r := clienteRouter(NewClienteHandler(repo))

		repo.EXPECT().Create(gomock.Any(), "t1", gomock.AssignableToTypeOf(entities.Cliente{})).DoAndReturn(
			func(_ any, _ string, c entities.Cliente) (*entities.Cliente, error) {
				if c.Nome != "Maria" || c.CpfCnpj != "12345678900" {
					t.Fatalf("unexpected payload: %+v", c)
				}
				c.ID = "novo"
				return &c, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/clientes", bytes.NewBufferString(`{"nome":"Maria","cpfCnpj":"12345678900"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestClienteHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("version conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		r := clienteRouter(NewClienteHandler(repo))

		repo.EXPECT().Update(gomock.Any(), "t1", "abc", gomock.Any()).
			Return(nil, errors.New("cliente: update: item changed"))

		req := httptest.NewRequest(http.MethodPut, "/v1/clientes/abc", bytes.NewBufferString(`{"nome":"Nova"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected opaque 500 for unknown errors, got %d", w.Code)
		}
	})

	t.Run("wrapped conflict sentinel maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		r := clienteRouter(NewClienteHandler(repo))

		wrapped := errors.Join(repository.ErrVersionConflict)
		repo.EXPECT().Update(gomock.Any(), "t1", "abc", gomock.Any()).Return(nil, wrapped)

		req := httptest.NewRequest(http.MethodPut, "/v1/clientes/abc", bytes.NewBufferString(`{"nome":"Nova"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("absent maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		r := clienteRouter(NewClienteHandler(repo))

		repo.EXPECT().Update(gomock.Any(), "t1", "missing", gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/clientes/missing", bytes.NewBufferString(`{"nome":"Nova"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestClienteHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClienteRepository(ctrl)
	r := clienteRouter(NewClienteHandler(repo))

	repo.EXPECT().Delete(gomock.Any(), "t1", "abc").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/clientes/abc", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
