package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ryazanov/inkstudio/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderClient_List(t *testing.T) {
	orders := []models.Order{
		{ID: 2, UserID: 7, ServiceType: "Консультация", Status: models.OrderStatusDiscussing},
		{ID: 1, UserID: 7, ServiceType: "Другое", Status: models.OrderStatusPending},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "7", r.Header.Get("X-User-Id"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(orders)
	}))
	defer srv.Close()

	oc := NewOrderClient(srv.URL)

	got, err := oc.List(context.Background(), 7)
	require.NoError(t, err)
	if diff := cmp.Diff(orders, got); diff != "" {
		t.Errorf("orders mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderClient_List_StoreError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	}))
	defer srv.Close()

	oc := NewOrderClient(srv.URL)

	_, err := oc.List(context.Background(), 7)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestOrderClient_Create(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "7", r.Header.Get("X-User-Id"))

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Консультация", req.ServiceType)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{
			ID:          10,
			UserID:      7,
			ServiceType: req.ServiceType,
			Description: req.Description,
			Status:      models.OrderStatusPending,
		})
	}))
	defer srv.Close()

	oc := NewOrderClient(srv.URL)

	order, err := oc.Create(context.Background(), 7, "Консультация", "эскиз дракона")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestOrderClient_Update(t *testing.T) {
	price := 5000.0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var upd models.OrderUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&upd))
		require.NotNil(t, upd.Price)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Order{
			ID:     upd.OrderID,
			UserID: 7,
			Status: models.OrderStatusPriced,
			Price:  upd.Price,
		})
	}))
	defer srv.Close()

	oc := NewOrderClient(srv.URL)

	order, err := oc.Update(context.Background(), 1, models.OrderUpdate{OrderID: 10, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPriced, order.Status)
	require.NotNil(t, order.Price)
	assert.Equal(t, price, *order.Price)
}

func TestOrderClient_Update_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid status transition", http.StatusConflict)
	}))
	defer srv.Close()

	oc := NewOrderClient(srv.URL)

	pending := models.OrderStatusPending
	_, err := oc.Update(context.Background(), 1, models.OrderUpdate{OrderID: 10, Status: &pending})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
}
