package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofinds/ecofinds-api/internal/api/shared"
	"github.com/ecofinds/ecofinds-api/internal/domain"
	"github.com/ecofinds/ecofinds-api/internal/mocks"
	"github.com/ecofinds/ecofinds-api/internal/service/auth"
	"github.com/ecofinds/ecofinds-api/internal/store"
)

// productRequest builds a request with chi URL params and, when
// authenticated is set, verified claims in the context the way the auth
// middleware places them.
func productRequest(
	t *testing.T,
	method, path, id string,
	payload any,
	authenticated bool,
) *http.Request {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")

	ctx := req.Context()
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if authenticated {
		ctx = context.WithValue(ctx, shared.ClaimsContextKey, &auth.Claims{
			UserID: 1,
			Email:  "a@x.com",
		})
	}
	return req.WithContext(ctx)
}

func seedProduct(store *mocks.MockProductStore) *domain.Product {
	return store.Seed(domain.Product{
		OwnerID:     1,
		Name:        "A",
		Description: "desc",
		Category:    "cat",
		Price:       10,
		ImageURL:    "https://img.example/a.png",
	})
}

func TestListProducts(t *testing.T) {
	t.Parallel()

	t.Run("returns all products", func(t *testing.T) {
		productStore := mocks.NewMockProductStore()
		seedProduct(productStore)
		seedProduct(productStore)
		handler := NewProductHandler(productStore)

		recorder := httptest.NewRecorder()
		handler.List(recorder, productRequest(t, "GET", "/api/products", "", nil, false))

		require.Equal(t, http.StatusOK, recorder.Code)
		var products []domain.Product
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&products))
		assert.Len(t, products, 2)
	})

	t.Run("empty catalog yields empty array", func(t *testing.T) {
		handler := NewProductHandler(mocks.NewMockProductStore())

		recorder := httptest.NewRecorder()
		handler.List(recorder, productRequest(t, "GET", "/api/products", "", nil, false))

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		productStore := mocks.NewMockProductStore()
		productStore.Err = errors.New("connection refused")
		handler := NewProductHandler(productStore)

		recorder := httptest.NewRecorder()
		handler.List(recorder, productRequest(t, "GET", "/api/products", "", nil, false))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestGetProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		seed       bool
		wantStatus int
	}{
		{name: "found", id: "1", seed: true, wantStatus: http.StatusOK},
		{name: "not found", id: "99", seed: true, wantStatus: http.StatusNotFound},
		{name: "non-numeric id", id: "abc", seed: true, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productStore := mocks.NewMockProductStore()
			var seeded *domain.Product
			if tt.seed {
				seeded = seedProduct(productStore)
			}
			handler := NewProductHandler(productStore)

			recorder := httptest.NewRecorder()
			handler.Get(recorder, productRequest(t, "GET", "/api/products/"+tt.id, tt.id, nil, false))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var got domain.Product
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
				assert.Equal(t, seeded.ID, got.ID)
				assert.Equal(t, seeded.Name, got.Name)
				assert.Equal(t, seeded.Price, got.Price)
				return
			}

			var resp shared.ErrorResponse
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
			assert.Equal(t, "Product not found", resp.Message)
		})
	}
}

func TestCreateProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     map[string]interface{}
		wantStatus  int
		wantMessage string
	}{
		{
			name: "valid product",
			payload: map[string]interface{}{
				"name":        "Bamboo Cup",
				"description": "reusable",
				"category":    "kitchen",
				"price":       9.5,
				"image_url":   "https://img.example/cup.png",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "minimal product",
			payload: map[string]interface{}{
				"name":  "Cup",
				"price": 1,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "missing name",
			payload: map[string]interface{}{
				"price": 9.5,
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Name and price are required",
		},
		{
			name: "missing price",
			payload: map[string]interface{}{
				"name": "Cup",
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Name and price are required",
		},
		{
			name: "zero price is treated as missing",
			payload: map[string]interface{}{
				"name":  "Cup",
				"price": 0,
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Name and price are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productStore := mocks.NewMockProductStore()
			handler := NewProductHandler(productStore)

			recorder := httptest.NewRecorder()
			handler.Create(recorder, productRequest(t, "POST", "/api/products", "", tt.payload, true))

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var got domain.Product
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
				assert.NotZero(t, got.ID)
				assert.Equal(t, int64(1), got.OwnerID, "owner comes from the token claims")
				assert.Equal(t, tt.payload["name"], got.Name)

				// Create→Get round-trip preserves field values.
				stored, err := productStore.GetByID(context.Background(), got.ID)
				require.NoError(t, err)
				assert.Equal(t, got.Name, stored.Name)
				assert.Equal(t, got.Price, stored.Price)
				return
			}

			if tt.wantMessage != "" {
				var resp shared.ErrorResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}

func TestCreateProductUnauthenticated(t *testing.T) {
	t.Parallel()

	productStore := mocks.NewMockProductStore()
	productStore.CreateFn = func(ctx context.Context, product *domain.Product) error {
		t.Fatal("store must not be reached without claims")
		return nil
	}
	handler := NewProductHandler(productStore)

	recorder := httptest.NewRecorder()
	handler.Create(recorder, productRequest(t, "POST", "/api/products", "", map[string]interface{}{
		"name":  "Cup",
		"price": 1,
	}, false))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateProductNegativePrice(t *testing.T) {
	t.Parallel()

	handler := NewProductHandler(mocks.NewMockProductStore())

	recorder := httptest.NewRecorder()
	handler.Create(recorder, productRequest(t, "POST", "/api/products", "", map[string]interface{}{
		"name":  "Cup",
		"price": -5,
	}, true))

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	// A supplied-but-invalid price gets its own field message, not the
	// missing-fields one.
	var resp shared.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "price", resp.Errors[0].Field)
	assert.Equal(t, "Price must be a non-negative number", resp.Errors[0].Message)
}

func TestCreateProductUnknownOwner(t *testing.T) {
	t.Parallel()

	productStore := mocks.NewMockProductStore()
	productStore.CreateFn = func(ctx context.Context, product *domain.Product) error {
		return fmt.Errorf("%w: owner with ID %d not found", store.ErrInvalidEntity, product.OwnerID)
	}
	handler := NewProductHandler(productStore)

	recorder := httptest.NewRecorder()
	handler.Create(recorder, productRequest(t, "POST", "/api/products", "", map[string]interface{}{
		"name":  "Cup",
		"price": 1,
	}, true))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Invalid entity data", resp.Message)
}

func TestUpdateProduct(t *testing.T) {
	t.Parallel()

	t.Run("partial update retains unspecified fields", func(t *testing.T) {
		productStore := mocks.NewMockProductStore()
		seeded := seedProduct(productStore)
		handler := NewProductHandler(productStore)

		recorder := httptest.NewRecorder()
		handler.Update(recorder, productRequest(t, "PUT", "/api/products/1", "1", map[string]interface{}{
			"price": 20,
		}, true))

		require.Equal(t, http.StatusOK, recorder.Code)
		var got domain.Product
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&got))
		assert.Equal(t, seeded.Name, got.Name)
		assert.Equal(t, seeded.Description, got.Description)
		assert.Equal(t, float64(20), got.Price)

		stored, err := productStore.GetByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(20), stored.Price)
		assert.Equal(t, seeded.Name, stored.Name)
	})

	t.Run("explicit zero price is applied", func(t *testing.T) {
		productStore := mocks.NewMockProductStore()
		seeded := seedProduct(productStore)
		handler := NewProductHandler(productStore)

		recorder := httptest.NewRecorder()
		handler.Update(recorder, productRequest(t, "PUT", "/api/products/1", "1", map[string]interface{}{
			"price": 0,
		}, true))

		require.Equal(t, http.StatusOK, recorder.Code)
		stored, err := productStore.GetByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Zero(t, stored.Price)
	})

	t.Run("empty name rejected and nothing persisted", func(t *testing.T) {
		productStore := mocks.NewMockProductStore()
		seeded := seedProduct(productStore)
		handler := NewProductHandler(productStore)

		recorder := httptest.NewRecorder()
		handler.Update(recorder, productRequest(t, "PUT", "/api/products/1", "1", map[string]interface{}{
			"name": "",
		}, true))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		stored, err := productStore.GetByID(context.Background(), seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, seeded.Name, stored.Name)
	})

	t.Run("not found", func(t *testing.T) {
		handler := NewProductHandler(mocks.NewMockProductStore())

		recorder := httptest.NewRecorder()
		handler.Update(recorder, productRequest(t, "PUT", "/api/products/99", "99", map[string]interface{}{
			"price": 20,
		}, true))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		productStore := mocks.NewMockProductStore()
		seedProduct(productStore)
		handler := NewProductHandler(productStore)

		recorder := httptest.NewRecorder()
		handler.Update(recorder, productRequest(t, "PUT", "/api/products/1", "1", map[string]interface{}{
			"price": -5,
		}, true))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()

	productStore := mocks.NewMockProductStore()
	seeded := seedProduct(productStore)
	handler := NewProductHandler(productStore)

	// First delete succeeds with a confirmation message.
	recorder := httptest.NewRecorder()
	handler.Delete(recorder, productRequest(t, "DELETE", "/api/products/1", "1", nil, true))
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp MessageResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Product deleted", resp.Message)

	_, err := productStore.GetByID(context.Background(), seeded.ID)
	assert.Error(t, err)

	// Second delete of the same id is a 404.
	recorder = httptest.NewRecorder()
	handler.Delete(recorder, productRequest(t, "DELETE", "/api/products/1", "1", nil, true))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
