package withdrawservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/pg"
)

const testWallet = "UQDKbjIcfM6ezt8KjKJJLshZJJSqX7XOA4ff-W72r5gqPrLF"

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockWithdrawalRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	withdrawalRepo := NewMockWithdrawalRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
	service := New(userRepo, withdrawalRepo, txManager, notifier)
	defer ctrl.Finish()
	return service, userRepo, withdrawalRepo, notifier
}

func TestWithdraw(t *testing.T) {
	service, userRepo, withdrawalRepo, notifier := NewMock(t)

	tests := []struct {
		name          string
		walletAddress string
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Successful withdrawal of the full balance",
			walletAddress: testWallet,
			prepareMock: func() {
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.User{
					ID: 1, TelegramID: 7645815913, Username: "ali_dev",
					AdsViewed: 50, Balance: decimal.RequireFromString("0.5491"),
				}, nil)
				userRepo.EXPECT().ResetBalance(gomock.Any(), 1).Return(nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
						assert.Equal(t, 1, withdrawal.UserID)
						assert.True(t, withdrawal.Amount.Equal(decimal.RequireFromString("0.5491")))
						assert.Equal(t, testWallet, withdrawal.WalletAddress)
						assert.Equal(t, domain.WithdrawalStatusPending, withdrawal.Status)
						withdrawal.ID = 1
						return withdrawal, nil
					})
				notifier.EXPECT().NotifyAdmin(gomock.Any()).Do(func(text string) {
					assert.True(t, strings.Contains(text, "New Withdrawal Request!"))
					assert.True(t, strings.Contains(text, "0.5491"))
					assert.True(t, strings.Contains(text, testWallet))
				})
			},
		},
		{
			name:          "EQ prefix is accepted",
			walletAddress: "EQBvW8Z5huBkMJYdnfAEM5JqTNkuWX3diqYENkWsIL0XggGG",
			prepareMock: func() {
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.User{
					ID: 1, AdsViewed: 120, Balance: decimal.RequireFromString("1.2"),
				}, nil)
				userRepo.EXPECT().ResetBalance(gomock.Any(), 1).Return(nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
						withdrawal.ID = 2
						return withdrawal, nil
					})
				notifier.EXPECT().NotifyAdmin(gomock.Any())
			},
		},
		{
			name:          "Missing address",
			walletAddress: "",
			prepareMock:   func() {},
			expectedError: ErrMissingAddress,
		},
		{
			name:          "Invalid address format",
			walletAddress: "XYZ123",
			prepareMock:   func() {},
			expectedError: ErrInvalidAddress,
		},
		{
			name:          "Not enough views",
			walletAddress: testWallet,
			prepareMock: func() {
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.User{
					ID: 1, AdsViewed: 49, Balance: decimal.RequireFromString("0.0049"),
				}, nil)
			},
			expectedError: ErrNotEnoughViews,
		},
		{
			name:          "No earnings",
			walletAddress: testWallet,
			prepareMock: func() {
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.User{
					ID: 1, AdsViewed: 50, Balance: decimal.Zero,
				}, nil)
			},
			expectedError: ErrNoEarnings,
		},
		{
			name:          "User not found",
			walletAddress: testWallet,
			prepareMock: func() {
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:          "Reset error rolls the request back",
			walletAddress: testWallet,
			prepareMock: func() {
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.User{
					ID: 1, AdsViewed: 50, Balance: decimal.RequireFromString("0.5491"),
				}, nil)
				userRepo.EXPECT().ResetBalance(gomock.Any(), 1).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:          "Create error rolls the request back",
			walletAddress: testWallet,
			prepareMock: func() {
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(&domain.User{
					ID: 1, AdsViewed: 50, Balance: decimal.RequireFromString("0.5491"),
				}, nil)
				userRepo.EXPECT().ResetBalance(gomock.Any(), 1).Return(nil)
				withdrawalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			withdrawal, user, err := service.Withdraw(context.Background(), 1, tt.walletAddress)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, withdrawal)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.WithdrawalStatusPending, withdrawal.Status)
				assert.True(t, user.Balance.IsZero())
			}
		})
	}
}
