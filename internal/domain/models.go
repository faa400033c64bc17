package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	WithdrawalStatusPending   = "pending"
	WithdrawalStatusCompleted = "completed"
	WithdrawalStatusRejected  = "rejected"
)

type User struct {
	ID           int             `db:"id"`
	TelegramID   int64           `db:"telegram_id"`
	FirstName    string          `db:"first_name"`
	LastName     string          `db:"last_name"`
	Username     string          `db:"username"`
	PhotoURL     string          `db:"photo_url"`
	AuthDate     int64           `db:"auth_date"`
	Hash         string          `db:"hash"`
	Balance      decimal.Decimal `db:"balance"`
	AdsViewed    int             `db:"ads_viewed"`
	ReferralCode string          `db:"referral_code"`
	ReferrerID   *int            `db:"referrer_id"`
	CreatedAt    time.Time       `db:"created_at"`
}

// DisplayName is what notifications and admin views call the user:
// the handle when set, the first name otherwise.
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.FirstName
}

type Withdrawal struct {
	ID            int             `db:"id"`
	UserID        int             `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	WalletAddress string          `db:"ton_wallet_address"`
	Status        string          `db:"status"`
	CreatedAt     time.Time       `db:"created_at"`
}

// WithdrawalWithOwner is the admin listing row: a withdrawal joined with the
// owning user's handle and first name.
type WithdrawalWithOwner struct {
	Withdrawal
	OwnerUsername  string `db:"owner_username"`
	OwnerFirstName string `db:"owner_first_name"`
}
