package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "shuttletrack/internal/errors"
)

func TestNewClient(t *testing.T) {
	assert.Nil(t, NewClient("", "key", "http://app"))
	assert.Nil(t, NewClient("http://provider", "", "http://app"))
	assert.NotNil(t, NewClient("http://provider", "key", "http://app"))
}

func TestClient_Configured(t *testing.T) {
	var nilClient *Client
	assert.False(t, nilClient.Configured())
	assert.True(t, NewClient("http://provider", "key", "http://app").Configured())
}

func TestClient_AuthorizeURL(t *testing.T) {
	c := NewClient("http://provider", "key", "http://app")
	url, err := c.AuthorizeURL("google")
	assert.NoError(t, err)
	assert.Equal(t, "http://provider/auth/v1/authorize?provider=google&redirect_to=http%3A%2F%2Fapp%2F", url)

	var nilClient *Client
	_, err = nilClient.AuthorizeURL("google")
	assert.ErrorIs(t, err, apperrors.ErrNotConfigured)
}

func TestClient_GetUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "service-key", r.Header.Get("apikey"))

		switch r.Header.Get("Authorization") {
		case "Bearer good-token":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id": "uid-123",
				"email": "player@example.com",
				"user_metadata": {"role": "player", "full_name": "Pat Lee"}
			}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"invalid token"}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key", "http://app")

	identity, err := c.GetUser(context.Background(), "good-token")
	assert.NoError(t, err)
	assert.Equal(t, "uid-123", identity.UID)
	assert.Equal(t, "player@example.com", identity.Email)
	assert.Equal(t, "player", identity.Metadata.Role)
	assert.Equal(t, "Pat Lee", identity.Metadata.FullName)

	identity, err = c.GetUser(context.Background(), "forged-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)
	assert.Nil(t, identity)
}

func TestClient_GetUserRejectsEmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"player@example.com"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "service-key", "http://app")
	identity, err := c.GetUser(context.Background(), "token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidSession)
	assert.Nil(t, identity)
}

func TestClient_GetUserNotConfigured(t *testing.T) {
	var nilClient *Client
	identity, err := nilClient.GetUser(context.Background(), "token")
	assert.ErrorIs(t, err, apperrors.ErrNotConfigured)
	assert.Nil(t, identity)
}
