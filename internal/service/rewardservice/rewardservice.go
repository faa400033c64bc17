package rewardservice

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smartcoinlabs/adrewards/internal/config"
	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/pg"
)

type UserRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	IncrementView(ctx context.Context, userID int, reward decimal.Decimal) (int, decimal.Decimal, error)
	AddToBalance(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
}

var ErrUserNotFound = errors.New("user not found")

// A milestone bonus lands on every 50th view.
const milestoneInterval = 50

type Service struct {
	userRepo       UserRepo
	txManager      pg.TXManager
	baseReward     decimal.Decimal
	milestoneBonus decimal.Decimal
	referralRate   decimal.Decimal
}

func New(userRepo UserRepo, txManager pg.TXManager, cfg *config.Config) (*Service, error) {
	baseReward, err := decimal.NewFromString(cfg.BaseReward)
	if err != nil {
		return nil, err
	}
	milestoneBonus, err := decimal.NewFromString(cfg.MilestoneBonus)
	if err != nil {
		return nil, err
	}
	referralRate, err := decimal.NewFromString(cfg.ReferralRate)
	if err != nil {
		return nil, err
	}

	return &Service{
		userRepo:       userRepo,
		txManager:      txManager,
		baseReward:     baseReward,
		milestoneBonus: milestoneBonus,
		referralRate:   referralRate,
	}, nil
}

// RecordView applies one ad view: counter +1, base reward, milestone bonus on
// every 50th view, and a single-level referral commission. Everything runs in
// one transaction with the user row locked, so concurrent views for the same
// user serialize instead of losing updates.
func (s *Service) RecordView(ctx context.Context, userID int) (*domain.User, error) {
	var updated *domain.User

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		adsViewed, balance, err := s.userRepo.IncrementView(ctx, userID, s.baseReward)
		if err != nil {
			return err
		}

		if adsViewed%milestoneInterval == 0 {
			balance, err = s.userRepo.AddToBalance(ctx, userID, s.milestoneBonus)
			if err != nil {
				return err
			}
		}

		// The commission never cascades: the referrer is credited a flat
		// share of the base reward, with no milestone and no further hop.
		if user.ReferrerID != nil {
			referrer, err := s.userRepo.FindByID(ctx, *user.ReferrerID)
			if err != nil {
				return err
			}
			if referrer != nil {
				commission := s.baseReward.Mul(s.referralRate)
				if _, err := s.userRepo.AddToBalance(ctx, referrer.ID, commission); err != nil {
					return err
				}
			}
		}

		user.AdsViewed = adsViewed
		user.Balance = balance
		updated = user
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			zap.L().Error("failed to record ad view", zap.Int("userID", userID), zap.Error(err))
		}
		return nil, err
	}

	return updated, nil
}
