package withdrawservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/pg"
)

type UserRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	ResetBalance(ctx context.Context, userID int) error
}

type WithdrawalRepo interface {
	Create(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
}

type Notifier interface {
	NotifyAdmin(text string)
}

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrMissingAddress = errors.New("wallet address is required")
	ErrInvalidAddress = errors.New("invalid wallet address format")
	ErrNotEnoughViews = errors.New("at least 50 ads must be viewed before withdrawing")
	ErrNoEarnings     = errors.New("no earnings to withdraw")
)

const minViewsForWithdrawal = 50

var walletPrefixes = []string{"UQ", "EQ"}

type Service struct {
	userRepo       UserRepo
	withdrawalRepo WithdrawalRepo
	txManager      pg.TXManager
	notifier       Notifier
}

func New(userRepo UserRepo, withdrawalRepo WithdrawalRepo, txManager pg.TXManager, notifier Notifier) *Service {
	return &Service{
		userRepo:       userRepo,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
		notifier:       notifier,
	}
}

func validAddress(address string) bool {
	for _, prefix := range walletPrefixes {
		if strings.HasPrefix(address, prefix) {
			return true
		}
	}
	return false
}

// Withdraw pays out the full balance: it zeroes the balance and records a
// pending withdrawal in one transaction, then notifies the operator after
// commit. Validation order is fixed: address present, address format, view
// threshold, positive balance.
func (s *Service) Withdraw(ctx context.Context, userID int, walletAddress string) (*domain.Withdrawal, *domain.User, error) {
	if walletAddress == "" {
		return nil, nil, ErrMissingAddress
	}
	if !validAddress(walletAddress) {
		return nil, nil, ErrInvalidAddress
	}

	var withdrawal *domain.Withdrawal
	var user *domain.User

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		if user.AdsViewed < minViewsForWithdrawal {
			return ErrNotEnoughViews
		}
		if !user.Balance.IsPositive() {
			return ErrNoEarnings
		}

		if err := s.userRepo.ResetBalance(ctx, userID); err != nil {
			return err
		}

		withdrawal, err = s.withdrawalRepo.Create(ctx, &domain.Withdrawal{
			UserID:        userID,
			Amount:        user.Balance,
			WalletAddress: walletAddress,
			Status:        domain.WithdrawalStatusPending,
		})
		if err != nil {
			return err
		}

		user.Balance = decimal.Zero
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// Fire-and-forget: the withdrawal is already committed, delivery failures
	// only get logged by the notifier.
	s.notifier.NotifyAdmin(fmt.Sprintf(
		"<b>New Withdrawal Request!</b>\nUser: %s (ID: %d)\nAmount: %s\nTON Wallet: <code>%s</code>\nTimestamp: %s",
		user.DisplayName(), user.TelegramID,
		withdrawal.Amount.StringFixed(4), walletAddress,
		time.Now().Format("2006-01-02 15:04:05"),
	))

	zap.L().Info("withdrawal requested",
		zap.Int("userID", userID),
		zap.String("amount", withdrawal.Amount.String()),
	)
	return withdrawal, user, nil
}
