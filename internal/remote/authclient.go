package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/ryazanov/inkstudio/internal/models"
)

// AuthClient talks to the auth endpoint
type AuthClient struct {
	client  *http.Client
	baseURL string
}

// NewAuthClient creates new AuthClient instance
func NewAuthClient(baseURL string) *AuthClient {
	return &AuthClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: baseURL,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Login authenticates and returns the user with a token
func (ac *AuthClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	return ac.post(ctx, "login", loginRequest{Email: email, Password: password})
}

// Register creates an account and returns the user with a token
func (ac *AuthClient) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	return ac.post(ctx, "register", registerRequest{Email: email, Password: password, Name: name})
}

func (ac *AuthClient) post(ctx context.Context, action string, payload any) (*models.User, string, error) {
	endpoint, err := url.JoinPath(ac.baseURL, action)
	if err != nil {
		return nil, "", err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := ac.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", newAPIError(resp)
	}

	var authResp authResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return nil, "", err
	}

	return &authResp.User, authResp.Token, nil
}
