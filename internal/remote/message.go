package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ryazanov/inkstudio/internal/models"
)

// MessageClient talks to the remote message store
type MessageClient struct {
	client  *http.Client
	baseURL string
}

// NewMessageClient creates new MessageClient instance
func NewMessageClient(baseURL string) *MessageClient {
	return &MessageClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: baseURL,
	}
}

// List returns the conversation of one order, oldest first. The store is
// the sole source of ordering.
func (mc *MessageClient) List(ctx context.Context, userID, orderID uint64) ([]models.Message, error) {
	u, err := url.Parse(mc.baseURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("order_id", strconv.FormatUint(orderID, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	setIdentity(req, userID)

	resp, err := mc.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp)
	}

	var messages []models.Message
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return nil, err
	}

	return messages, nil
}

type sendMessageRequest struct {
	OrderID uint64 `json:"order_id"`
	Message string `json:"message"`
}

// Create appends a message to an order conversation
func (mc *MessageClient) Create(ctx context.Context, userID, orderID uint64, text string) (*models.Message, error) {
	body, err := json.Marshal(sendMessageRequest{
		OrderID: orderID,
		Message: text,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mc.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	setIdentity(req, userID)

	resp, err := mc.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, newAPIError(resp)
	}

	var msg models.Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return nil, err
	}

	return &msg, nil
}
