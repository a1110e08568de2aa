package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/ryazanov/inkstudio/internal/models"
)

// OrderClient talks to the remote order store
type OrderClient struct {
	client  *http.Client
	baseURL string
}

// NewOrderClient creates new OrderClient instance
func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: baseURL,
	}
}

// List returns the orders visible to the caller. The store scopes the list
// by the caller's role: the master sees everything, a client their own.
func (oc *OrderClient) List(ctx context.Context, userID uint64) ([]models.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, oc.baseURL, nil)
	if err != nil {
		return nil, err
	}
	setIdentity(req, userID)

	resp, err := oc.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp)
	}

	var orders []models.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, err
	}

	return orders, nil
}

type createOrderRequest struct {
	ServiceType string `json:"service_type"`
	Description string `json:"description"`
}

// Create registers a new order and returns the stored entity
func (oc *OrderClient) Create(ctx context.Context, userID uint64, serviceType, description string) (*models.Order, error) {
	body, err := json.Marshal(createOrderRequest{
		ServiceType: serviceType,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oc.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	setIdentity(req, userID)

	resp, err := oc.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, newAPIError(resp)
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}

	return &order, nil
}

// Update sends one order update and returns the stored entity with the
// server-computed status.
func (oc *OrderClient) Update(ctx context.Context, userID uint64, upd models.OrderUpdate) (*models.Order, error) {
	body, err := json.Marshal(upd)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, oc.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	setIdentity(req, userID)

	resp, err := oc.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp)
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}

	return &order, nil
}
