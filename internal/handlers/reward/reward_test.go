package reward

import (
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
	"github.com/smartcoinlabs/adrewards/internal/service/rewardservice"
	"github.com/smartcoinlabs/adrewards/pkg/auth"
	"github.com/smartcoinlabs/adrewards/pkg/utils"
)

const testBaseURL = "https://ads.example.com"

func NewMock(t *testing.T) (*RewardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, testBaseURL)
	defer ctrl.Finish()
	return handler, service
}

func TestViewAdHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "View recorded",
			prepareMock: func() {
				service.EXPECT().RecordView(gomock.Any(), 1).Return(&domain.User{
					ID: 1, Balance: decimal.RequireFromString("0.5491"),
					AdsViewed: 50, ReferralCode: "REF1",
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().RecordView(gomock.Any(), 1).Return(nil, rewardservice.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().RecordView(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/view_ad", nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.ViewAd(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}

			var resp dto.ViewAdResponseDTO
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Equal(t, "0.5491", resp.User.Earnings)
			assert.Equal(t, 50, resp.User.AdsViewed)
		})
	}
}
