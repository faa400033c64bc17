package adminservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/smartcoinlabs/adrewards/internal/domain"
)

type UserRepo interface {
	List(ctx context.Context, search string) ([]domain.User, error)
}

type WithdrawalRepo interface {
	List(ctx context.Context, search string) ([]domain.WithdrawalWithOwner, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Withdrawal, error)
}

var (
	ErrInvalidStatus      = errors.New("status must be completed or rejected")
	ErrWithdrawalNotFound = errors.New("withdrawal not found")
)

type Service struct {
	userRepo       UserRepo
	withdrawalRepo WithdrawalRepo
}

func New(userRepo UserRepo, withdrawalRepo WithdrawalRepo) *Service {
	return &Service{
		userRepo:       userRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

func (s *Service) ListUsers(ctx context.Context, search string) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx, search)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) ListWithdrawals(ctx context.Context, search string) ([]domain.WithdrawalWithOwner, error) {
	withdrawals, err := s.withdrawalRepo.List(ctx, search)
	if err != nil {
		zap.L().Error("failed to list withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

// SetWithdrawalStatus marks a withdrawal completed or rejected. The write is
// unconditional: re-marking an already terminal record is allowed so admin
// retries stay idempotent.
func (s *Service) SetWithdrawalStatus(ctx context.Context, id int, status string) (*domain.Withdrawal, error) {
	if status != domain.WithdrawalStatusCompleted && status != domain.WithdrawalStatusRejected {
		return nil, ErrInvalidStatus
	}

	withdrawal, err := s.withdrawalRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		zap.L().Error("failed to update withdrawal status", zap.Error(err))
		return nil, err
	}
	if withdrawal == nil {
		return nil, ErrWithdrawalNotFound
	}

	zap.L().Info("withdrawal status updated", zap.Int("id", id), zap.String("status", status))
	return withdrawal, nil
}
