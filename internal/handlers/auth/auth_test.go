package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/dto"
	"github.com/smartcoinlabs/adrewards/internal/service/identityservice"
	pkgauth "github.com/smartcoinlabs/adrewards/pkg/auth"
	"github.com/smartcoinlabs/adrewards/pkg/utils"
)

const testBaseURL = "https://ads.example.com"

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, testBaseURL)
	defer ctrl.Finish()
	return handler, service
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	user := &domain.User{
		ID: 1, TelegramID: 7645815913, FirstName: "Ali", Username: "ali_dev",
		Balance: decimal.RequireFromString("0.0001"), AdsViewed: 1,
		ReferralCode: "REF7645815913",
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"id":7645815913,"first_name":"Ali","username":"ali_dev","auth_date":1700000000,"hash":"abc"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), pkgauth.Assertion{
					"id":         "7645815913",
					"first_name": "Ali",
					"username":   "ali_dev",
					"auth_date":  "1700000000",
					"hash":       "abc",
				}).Return(user, nil)
				service.EXPECT().GenerateToken(1).Return("some-jwt-token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid signature",
			body: `{"id":7645815913,"first_name":"Ali","auth_date":1700000000,"hash":"tampered"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, pkgauth.ErrInvalidSignature)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: pkgauth.ErrInvalidSignature.Error(),
		},
		{
			name: "Stale assertion",
			body: `{"id":7645815913,"first_name":"Ali","auth_date":100,"hash":"abc"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, pkgauth.ErrStaleAssertion)
			},
			expectedCode:  http.StatusForbidden,
			expectedError: pkgauth.ErrStaleAssertion.Error(),
		},
		{
			name: "Malformed assertion",
			body: `{"first_name":"Ali"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, pkgauth.ErrMalformedAssertion)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: pkgauth.ErrMalformedAssertion.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Service error",
			body: `{"id":7645815913,"first_name":"Ali","auth_date":1700000000,"hash":"abc"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name: "Error generating token",
			body: `{"id":7645815913,"first_name":"Ali","auth_date":1700000000,"hash":"abc"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user, nil)
				service.EXPECT().GenerateToken(1).Return("", errors.New("token generation error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Error generating token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Login(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var resp dto.LoginResponseDTO
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Equal(t, "some-jwt-token", resp.Token)
			assert.Equal(t, "Bearer some-jwt-token", rr.Header().Get("Authorization"))
			assert.Equal(t, testBaseURL+"/?ref=REF7645815913", resp.User.ReferralLink)
			assert.Equal(t, "0.0001", resp.User.Earnings)
		})
	}
}

func TestUserDataHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "User found",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(&domain.User{
					ID: 1, FirstName: "Ali", Balance: decimal.Zero, ReferralCode: "REF1",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(nil, identityservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().GetUser(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("GET", "/api/user_data", nil)
			req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.UserData(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	handler, _ := NewMock(t)

	req := httptest.NewRequest("POST", "/api/logout", nil)
	rr := httptest.NewRecorder()

	handler.Logout(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp dto.LogoutResponseDTO
	err := json.NewDecoder(rr.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
}
