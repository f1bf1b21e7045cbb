package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "shuttletrack/internal/errors"
	"shuttletrack/internal/model"
	"shuttletrack/internal/service"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// MockSyncService is a mock implementation of service.SyncService.
type MockSyncService struct {
	mock.Mock
}

func (m *MockSyncService) Sync(ctx context.Context, in service.SyncInput) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthHandler_Sync(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(sync *MockSyncService)
		expectedStatus int
	}{
		{
			name: "successful sync",
			body: `{"external_uid":"uid-1","email":"player@example.com","name":"Player"}`,
			setupMock: func(sync *MockSyncService) {
				sync.On("Sync", mock.Anything, mock.AnythingOfType("service.SyncInput")).
					Return(&model.User{ID: 1, Email: "player@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing email",
			body: `{"external_uid":"uid-1"}`,
			setupMock: func(sync *MockSyncService) {
				sync.On("Sync", mock.Anything, mock.AnythingOfType("service.SyncInput")).
					Return(nil, apperrors.ErrEmailRequired)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid access token",
			body: `{"email":"player@example.com","access_token":"forged"}`,
			setupMock: func(sync *MockSyncService) {
				sync.On("Sync", mock.Anything, mock.AnythingOfType("service.SyncInput")).
					Return(nil, apperrors.ErrInvalidSession)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "uninvited player",
			body: `{"email":"stray@example.com"}`,
			setupMock: func(sync *MockSyncService) {
				sync.On("Sync", mock.Anything, mock.AnythingOfType("service.SyncInput")).
					Return(nil, apperrors.ErrInvitationRequired)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "malformed email is rejected by validation",
			body:           `{"email":"not-an-email"}`,
			setupMock:      func(sync *MockSyncService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sync := new(MockSyncService)
			tt.setupMock(sync)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/sync", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := NewAuthHandler(nil, sync, nil)
			err := h.Sync(c)

			if tt.expectedStatus == http.StatusOK {
				assert.NoError(t, err)
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), "player@example.com")
			} else {
				var he *echo.HTTPError
				assert.ErrorAs(t, err, &he)
				assert.Equal(t, tt.expectedStatus, he.Code)
			}
			sync.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Callback(t *testing.T) {
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/auth/callback", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(nil, nil, nil)
	assert.NoError(t, h.Callback(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OAUTH_AUTH_SUCCESS")
}
