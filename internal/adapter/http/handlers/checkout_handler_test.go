package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkout_gateway/internal/adapter/http/handlers/mocks"
	"checkout_gateway/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTestRouter(h *CheckoutHandler) *gin.Engine {
	r := gin.New()
	r.POST("/api/token", h.GenerateClientToken)
	r.POST("/api/orders", h.CreateOrder)
	r.POST("/api/orders/:orderID/capture", h.CaptureOrder)
	r.POST("/api/orders/:orderID/authorize", h.AuthorizeOrder)
	r.POST("/orders/:authorizationID/captureAuthorize", h.CaptureAuthorization)
	return r
}

func TestCheckoutHandler_GenerateClientToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("relays provider status and body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().GenerateClientToken(gomock.Any()).Return(entities.ProviderResult{
			StatusCode: http.StatusOK,
			Body:       json.RawMessage(`{"client_token":"ct-1","expires_in":3600}`),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/token", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"client_token":"ct-1","expires_in":3600}` {
			t.Fatalf("body not relayed verbatim: %s", w.Body.String())
		}
	})

	t.Run("failure collapses to fixed 500 payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().GenerateClientToken(gomock.Any()).Return(entities.ProviderResult{}, errors.New("missing credentials"))

		req := httptest.NewRequest(http.MethodPost, "/api/token", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "Failed to generate client token." {
			t.Fatalf("unexpected error payload: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes cart through and relays 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().CreateOrder(gomock.Any(), json.RawMessage(`[{"sku":"demo-item","quantity":1}]`)).Return(entities.ProviderResult{
			StatusCode: http.StatusCreated,
			Body:       json.RawMessage(`{"id":"ORD-1","status":"CREATED"}`),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{"cart":[{"sku":"demo-item","quantity":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Body.String() != `{"id":"ORD-1","status":"CREATED"}` {
			t.Fatalf("body not relayed verbatim: %s", w.Body.String())
		}
	})

	t.Run("unreadable body degrades to empty cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().CreateOrder(gomock.Any(), json.RawMessage(`{}`)).Return(entities.ProviderResult{
			StatusCode: http.StatusCreated,
			Body:       json.RawMessage(`{"id":"ORD-2"}`),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("failure collapses to fixed 500 payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(entities.ProviderResult{}, errors.New("upstream down"))

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBufferString(`{"cart":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "Failed to create order." {
			t.Fatalf("unexpected error payload: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_CaptureOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("relays 201 COMPLETED", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().CaptureOrder(gomock.Any(), "ABC123").Return(entities.ProviderResult{
			StatusCode: http.StatusCreated,
			Body:       json.RawMessage(`{"status":"COMPLETED"}`),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/ABC123/capture", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if w.Body.String() != `{"status":"COMPLETED"}` {
			t.Fatalf("body not relayed verbatim: %s", w.Body.String())
		}
	})

	t.Run("failure collapses to fixed 500 payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().CaptureOrder(gomock.Any(), "ABC123").Return(entities.ProviderResult{}, errors.New("non-json body"))

		req := httptest.NewRequest(http.MethodPost, "/api/orders/ABC123/capture", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "Failed to capture order." {
			t.Fatalf("unexpected error payload: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_AuthorizeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("relays provider result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().AuthorizeOrder(gomock.Any(), "ORD-9").Return(entities.ProviderResult{
			StatusCode: http.StatusCreated,
			Body:       json.RawMessage(`{"status":"AUTHORIZED"}`),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders/ORD-9/authorize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated || w.Body.String() != `{"status":"AUTHORIZED"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("failure collapses to fixed 500 payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().AuthorizeOrder(gomock.Any(), "ORD-9").Return(entities.ProviderResult{}, errors.New("upstream down"))

		req := httptest.NewRequest(http.MethodPost, "/api/orders/ORD-9/authorize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "Failed to authorize order." {
			t.Fatalf("unexpected error payload: %s", w.Body.String())
		}
	})
}

func TestCheckoutHandler_CaptureAuthorization(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("relays provider result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().CaptureAuthorization(gomock.Any(), "AUTH-1").Return(entities.ProviderResult{
			StatusCode: http.StatusCreated,
			Body:       json.RawMessage(`{"status":"COMPLETED"}`),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/orders/AUTH-1/captureAuthorize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated || w.Body.String() != `{"status":"COMPLETED"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("failure collapses to fixed 500 payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newTestRouter(NewCheckoutHandler(uc))

		uc.EXPECT().CaptureAuthorization(gomock.Any(), "AUTH-1").Return(entities.ProviderResult{}, errors.New("upstream down"))

		req := httptest.NewRequest(http.MethodPost, "/orders/AUTH-1/captureAuthorize", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "Failed to capture authorize." {
			t.Fatalf("unexpected error payload: %s", w.Body.String())
		}
	})
}
