package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "shuttletrack/internal/errors"
)

// Identity is the verified identity returned by the provider for a session
// access token. Metadata carries whatever the provider stored at signup.
type Identity struct {
	UID      string
	Email    string
	Metadata Metadata
}

// Metadata is the subset of provider user metadata the sync flow reads.
type Metadata struct {
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

// Client talks to a Supabase-compatible auth REST API. A nil Client means the
// provider is not configured; every method then fails with ErrNotConfigured.
type Client struct {
	baseURL    string
	serviceKey string
	appURL     string
	httpClient *http.Client
}

// NewClient builds a provider client, or nil when baseURL/serviceKey are unset
// so the rest of the service can degrade instead of crashing.
func NewClient(baseURL, serviceKey, appURL string) *Client {
	if baseURL == "" || serviceKey == "" {
		return nil
	}
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		appURL:     appURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether the client can reach the provider.
func (c *Client) Configured() bool {
	return c != nil
}

// AuthorizeURL builds the provider's authorization redirect URL for the given
// provider name (google, github, ...).
func (c *Client) AuthorizeURL(providerName string) (string, error) {
	if c == nil {
		return "", apperrors.ErrNotConfigured
	}
	params := url.Values{}
	params.Set("provider", providerName)
	params.Set("redirect_to", c.appURL+"/")
	return c.baseURL + "/auth/v1/authorize?" + params.Encode(), nil
}

type providerUser struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	UserMetadata Metadata `json:"user_metadata"`
}

// GetUser exchanges a session access token for the verified identity behind
// it. An expired or forged token yields ErrInvalidSession.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*Identity, error) {
	if c == nil {
		return nil, apperrors.ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, apperrors.ErrInvalidSession
	}

	var pu providerUser
	if err := json.NewDecoder(resp.Body).Decode(&pu); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}
	if pu.ID == "" {
		return nil, apperrors.ErrInvalidSession
	}

	return &Identity{UID: pu.ID, Email: pu.Email, Metadata: pu.UserMetadata}, nil
}
