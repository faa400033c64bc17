package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/dto"
	"github.com/smartcoinlabs/adrewards/internal/service/adminservice"
	"github.com/smartcoinlabs/adrewards/pkg/auth"
	"github.com/smartcoinlabs/adrewards/pkg/utils"
)

const adminTelegramID int64 = 999

func NewMock(t *testing.T) (*AdminHandler, *MockService, *MockIdentityService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	identityService := NewMockIdentityService(ctrl)
	handler := New(service, identityService, adminTelegramID)
	defer ctrl.Finish()
	return handler, service, identityService
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
}

func TestRequireAdmin(t *testing.T) {
	handler, _, identityService := NewMock(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		request      *http.Request
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Configured admin passes",
			request: authedRequest("GET", "/api/admin/users"),
			prepareMock: func() {
				identityService.EXPECT().GetUser(gomock.Any(), 1).
					Return(&domain.User{ID: 1, TelegramID: adminTelegramID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:    "Other users are rejected",
			request: authedRequest("GET", "/api/admin/users"),
			prepareMock: func() {
				identityService.EXPECT().GetUser(gomock.Any(), 1).
					Return(&domain.User{ID: 1, TelegramID: 123}, nil)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Missing user id is rejected",
			request:      httptest.NewRequest("GET", "/api/admin/users", nil),
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:    "Lookup error is rejected",
			request: authedRequest("GET", "/api/admin/users"),
			prepareMock: func() {
				identityService.EXPECT().GetUser(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.RequireAdmin(next).ServeHTTP(rr, tt.request)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestRequireAdmin_Unconfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	identityService := NewMockIdentityService(ctrl)
	handler := New(NewMockService(ctrl), identityService, 0)

	identityService.EXPECT().GetUser(gomock.Any(), 1).
		Return(&domain.User{ID: 1, TelegramID: 0}, nil)

	rr := httptest.NewRecorder()
	handler.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rr, authedRequest("GET", "/api/admin/users"))

	// With no admin configured nobody gets in, even a zero telegram id.
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestListUsersHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		target        string
		search        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Users listed",
			target: "/api/admin/users?search=ali",
			prepareMock: func() {
				service.EXPECT().ListUsers(gomock.Any(), "ali").Return([]domain.User{
					{ID: 1, Username: "ali_dev", Balance: decimal.RequireFromString("0.5491"), AdsViewed: 50},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Service error",
			target: "/api/admin/users",
			prepareMock: func() {
				service.EXPECT().ListUsers(gomock.Any(), "").Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.ListUsers(rr, authedRequest("GET", tt.target))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var resp dto.AdminUsersResponseDTO
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Len(t, resp.Users, 1)
			assert.Equal(t, "0.5491", resp.Users[0].Earnings)
		})
	}
}

func TestListWithdrawalsHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		target        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Withdrawals listed",
			target: "/api/admin/withdrawals",
			prepareMock: func() {
				service.EXPECT().ListWithdrawals(gomock.Any(), "").Return([]domain.WithdrawalWithOwner{
					{
						Withdrawal: domain.Withdrawal{
							ID: 1, UserID: 1, Amount: decimal.RequireFromString("0.5491"),
							WalletAddress: "UQabc", Status: domain.WithdrawalStatusPending,
						},
						OwnerUsername: "ali_dev",
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Service error",
			target: "/api/admin/withdrawals?search=UQ",
			prepareMock: func() {
				service.EXPECT().ListWithdrawals(gomock.Any(), "UQ").Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.ListWithdrawals(rr, authedRequest("GET", tt.target))

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var resp dto.AdminWithdrawalsResponseDTO
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Len(t, resp.Withdrawals, 1)
			assert.Equal(t, "ali_dev", resp.Withdrawals[0].OwnerUsername)
		})
	}
}

func TestSetWithdrawalStatusHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		id            string
		status        string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:   "Marked completed",
			id:     "1",
			status: "completed",
			prepareMock: func() {
				service.EXPECT().SetWithdrawalStatus(gomock.Any(), 1, "completed").
					Return(&domain.Withdrawal{ID: 1, Status: "completed"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid id",
			id:            "abc",
			status:        "completed",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid withdrawal id",
		},
		{
			name:   "Invalid status",
			id:     "1",
			status: "paid",
			prepareMock: func() {
				service.EXPECT().SetWithdrawalStatus(gomock.Any(), 1, "paid").
					Return(nil, adminservice.ErrInvalidStatus)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: adminservice.ErrInvalidStatus.Error(),
		},
		{
			name:   "Withdrawal not found",
			id:     "99",
			status: "rejected",
			prepareMock: func() {
				service.EXPECT().SetWithdrawalStatus(gomock.Any(), 99, "rejected").
					Return(nil, adminservice.ErrWithdrawalNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Withdrawal not found",
		},
		{
			name:   "Service error",
			id:     "1",
			status: "completed",
			prepareMock: func() {
				service.EXPECT().SetWithdrawalStatus(gomock.Any(), 1, "completed").
					Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := authedRequest("POST", "/api/admin/withdrawals/"+tt.id+"/"+tt.status)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			rctx.URLParams.Add("status", tt.status)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.SetWithdrawalStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var resp dto.AdminStatusResponseDTO
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Equal(t, 1, resp.ID)
			assert.Equal(t, "completed", resp.Status)
		})
	}
}
