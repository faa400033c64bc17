package service

import (
	"github.com/smartcoinlabs/adrewards/internal/config"
	"github.com/smartcoinlabs/adrewards/internal/handlers/admin"
	authhandlers "github.com/smartcoinlabs/adrewards/internal/handlers/auth"
	"github.com/smartcoinlabs/adrewards/internal/handlers/reward"
	"github.com/smartcoinlabs/adrewards/internal/handlers/withdraw"
	"github.com/smartcoinlabs/adrewards/internal/pg"
	"github.com/smartcoinlabs/adrewards/internal/repo"
	"github.com/smartcoinlabs/adrewards/internal/service/adminservice"
	"github.com/smartcoinlabs/adrewards/internal/service/identityservice"
	"github.com/smartcoinlabs/adrewards/internal/service/rewardservice"
	"github.com/smartcoinlabs/adrewards/internal/service/withdrawservice"
	pkgauth "github.com/smartcoinlabs/adrewards/pkg/auth"
)

// Notifier is the sink shared by the identity and withdrawal services.
type Notifier interface {
	NotifyAdmin(text string)
}

type Services struct {
	IdentityService authhandlers.Service
	RewardService   reward.Service
	WithdrawService withdraw.Service
	AdminService    admin.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config, jwtService pkgauth.JWTServiceInterface, ntf Notifier) (*Services, error) {
	verifier := pkgauth.NewWidgetVerifier(cfg.BotToken)

	identityService := identityservice.New(repo.UserRepo, verifier, jwtService, ntf)
	rewardService, err := rewardservice.New(repo.UserRepo, txManager, cfg)
	if err != nil {
		return nil, err
	}
	withdrawService := withdrawservice.New(repo.UserRepo, repo.WithdrawalRepo, txManager, ntf)
	adminService := adminservice.New(repo.UserRepo, repo.WithdrawalRepo)

	return &Services{
		IdentityService: identityService,
		RewardService:   rewardService,
		WithdrawService: withdrawService,
		AdminService:    adminService,
	}, nil
}
