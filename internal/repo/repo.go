package repo

import (
	"github.com/smartcoinlabs/adrewards/internal/pg"
	userrepo "github.com/smartcoinlabs/adrewards/internal/repo/user-repo"
	withdrawalrepo "github.com/smartcoinlabs/adrewards/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
	}
}
