package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "shuttletrack/internal/errors"
	"shuttletrack/internal/provider"
	"shuttletrack/internal/service"
)

// callbackHTML closes the OAuth popup and notifies the opening window.
const callbackHTML = `<html>
  <body>
    <script>
      if (window.opener) {
        window.opener.postMessage({ type: 'OAUTH_AUTH_SUCCESS' }, '*');
        window.close();
      } else {
        window.location.href = '/';
      }
    </script>
    <p>Authentication successful. This window should close automatically.</p>
  </body>
</html>`

// AuthHandler handles authentication endpoints: local credentials, the
// provider sync flow, and the OAuth redirect plumbing.
type AuthHandler struct {
	authService service.AuthService
	syncService service.SyncService
	provider    *provider.Client
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, syncService service.SyncService, providerClient *provider.Client) *AuthHandler {
	return &AuthHandler{authService: authService, syncService: syncService, provider: providerClient}
}

// RegisterRequest represents a local registration request.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Name            string `json:"name" validate:"required"`
	Role            string `json:"role" validate:"omitempty,oneof=admin coach player"`
	InvitationToken string `json:"invitation_token"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SyncRequest is the claim bundle for the provider sync endpoint.
type SyncRequest struct {
	ExternalUID     string `json:"external_uid"`
	Email           string `json:"email" validate:"omitempty,email"`
	Name            string `json:"name"`
	AccessToken     string `json:"access_token"`
	Role            string `json:"role" validate:"omitempty,oneof=admin coach player"`
	InvitationToken string `json:"invitation_token"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token,omitempty"`
	User         interface{} `json:"user,omitempty"`
}

// AuthURLResponse carries the provider authorization redirect URL.
type AuthURLResponse struct {
	URL string `json:"url"`
}

// Sync godoc
// @Summary Reconcile an authentication event with the local user table
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SyncRequest true "Authentication claims"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/sync [post]
func (h *AuthHandler) Sync(c echo.Context) error {
	var req SyncRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.syncService.Sync(c.Request().Context(), service.SyncInput{
		ExternalUID:     req.ExternalUID,
		Email:           req.Email,
		Name:            req.Name,
		AccessToken:     req.AccessToken,
		Role:            req.Role,
		InvitationToken: req.InvitationToken,
	})
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// AuthURL godoc
// @Summary Build the provider authorization redirect URL
// @Tags auth
// @Produce json
// @Param provider query string false "Provider name" default(google)
// @Success 200 {object} AuthURLResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/url [get]
func (h *AuthHandler) AuthURL(c echo.Context) error {
	name := c.QueryParam("provider")
	if name == "" {
		name = "google"
	}
	url, err := h.provider.AuthorizeURL(name)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, AuthURLResponse{URL: url})
}

// Callback serves the static popup-completion page after the provider
// redirects back.
func (h *AuthHandler) Callback(c echo.Context) error {
	return c.HTML(http.StatusOK, callbackHTML)
}

// Register godoc
// @Summary Register a new user with local credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name, req.Role, req.InvitationToken)
	if err != nil {
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "user registered successfully",
		"user":    user,
	})
}

// Login godoc
// @Summary Login with local credentials
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accessToken, refreshToken, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		he := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accessToken, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_REFRESH_TOKEN",
		})
	}
	return c.JSON(http.StatusOK, AuthResponse{AccessToken: accessToken})
}

// Logout godoc
// @Summary Logout and revoke the refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "Refresh token"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_REFRESH_TOKEN",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out successfully"})
}
