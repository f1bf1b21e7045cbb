package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "shuttletrack/internal/errors"
	"shuttletrack/internal/model"
)

// MockInvitationService is a mock implementation of service.InvitationService.
type MockInvitationService struct {
	mock.Mock
}

func (m *MockInvitationService) Create(ctx context.Context, email string, coachID uint) (*model.Invitation, error) {
	args := m.Called(ctx, email, coachID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *MockInvitationService) FindPending(ctx context.Context, token string) (*model.Invitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invitation), args.Error(1)
}

func (m *MockInvitationService) Accept(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestInvitationHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(invitations *MockInvitationService)
		expectedStatus int
	}{
		{
			name: "invitation issued",
			body: `{"email":"player@example.com","coachId":2}`,
			setupMock: func(invitations *MockInvitationService) {
				invitations.On("Create", mock.Anything, "player@example.com", uint(2)).
					Return(&model.Invitation{Token: "abc123", Status: model.InvitationPending}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown coach",
			body: `{"email":"player@example.com","coachId":99}`,
			setupMock: func(invitations *MockInvitationService) {
				invitations.On("Create", mock.Anything, "player@example.com", uint(99)).
					Return(nil, apperrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing coach id",
			body:           `{"email":"player@example.com"}`,
			setupMock:      func(invitations *MockInvitationService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invitations := new(MockInvitationService)
			tt.setupMock(invitations)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodPost, "/api/invitations", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := NewInvitationHandler(invitations)
			err := h.Create(c)

			if tt.expectedStatus == http.StatusOK {
				assert.NoError(t, err)
				var resp CreateInvitationResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, "abc123", resp.Token)
			} else {
				var he *echo.HTTPError
				assert.ErrorAs(t, err, &he)
				assert.Equal(t, tt.expectedStatus, he.Code)
			}
			invitations.AssertExpectations(t)
		})
	}
}

func TestInvitationHandler_Get(t *testing.T) {
	coach := &model.User{ID: 2, Name: "Coach Kim"}

	tests := []struct {
		name           string
		token          string
		setupMock      func(invitations *MockInvitationService)
		expectedStatus int
		expectedCoach  string
	}{
		{
			name:  "pending invitation with coach name",
			token: "good-token",
			setupMock: func(invitations *MockInvitationService) {
				invitations.On("FindPending", mock.Anything, "good-token").Return(&model.Invitation{
					ID:     1,
					Email:  "player@example.com",
					Token:  "good-token",
					Status: model.InvitationPending,
					Coach:  coach,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCoach:  "Coach Kim",
		},
		{
			name:  "unknown token",
			token: "bad-token",
			setupMock: func(invitations *MockInvitationService) {
				invitations.On("FindPending", mock.Anything, "bad-token").
					Return(nil, apperrors.ErrInvitationNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invitations := new(MockInvitationService)
			tt.setupMock(invitations)

			e := newTestEcho()
			req := httptest.NewRequest(http.MethodGet, "/api/invitations/"+tt.token, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("token")
			c.SetParamValues(tt.token)

			h := NewInvitationHandler(invitations)
			err := h.Get(c)

			if tt.expectedStatus == http.StatusOK {
				assert.NoError(t, err)
				var resp InvitationResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCoach, resp.CoachName)
				assert.Nil(t, resp.Coach)
			} else {
				var he *echo.HTTPError
				assert.ErrorAs(t, err, &he)
				assert.Equal(t, tt.expectedStatus, he.Code)
			}
			invitations.AssertExpectations(t)
		})
	}
}
