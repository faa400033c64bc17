package dto

import (
	"time"

	"github.com/smartcoinlabs/adrewards/internal/domain"
)

type AdminUserDTO struct {
	ID           int       `json:"id"`
	TelegramID   int64     `json:"telegram_id"`
	FirstName    string    `json:"first_name"`
	Username     string    `json:"username"`
	Earnings     string    `json:"earnings"`
	AdsViewed    int       `json:"ads_viewed"`
	ReferralCode string    `json:"referral_code"`
	CreatedAt    time.Time `json:"created_at"`
}

type AdminUsersResponseDTO struct {
	Success bool           `json:"success"`
	Users   []AdminUserDTO `json:"users"`
}

type AdminWithdrawalDTO struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	Amount         string    `json:"amount"`
	WalletAddress  string    `json:"ton_wallet_address"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	OwnerUsername  string    `json:"owner_username"`
	OwnerFirstName string    `json:"owner_first_name"`
}

type AdminWithdrawalsResponseDTO struct {
	Success     bool                 `json:"success"`
	Withdrawals []AdminWithdrawalDTO `json:"withdrawals"`
}

type AdminStatusResponseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int    `json:"id"`
	Status  string `json:"status"`
}

func NewAdminUserDTO(user domain.User) AdminUserDTO {
	return AdminUserDTO{
		ID:           user.ID,
		TelegramID:   user.TelegramID,
		FirstName:    user.FirstName,
		Username:     user.Username,
		Earnings:     user.Balance.String(),
		AdsViewed:    user.AdsViewed,
		ReferralCode: user.ReferralCode,
		CreatedAt:    user.CreatedAt,
	}
}

func NewAdminWithdrawalDTO(wd domain.WithdrawalWithOwner) AdminWithdrawalDTO {
	return AdminWithdrawalDTO{
		ID:             wd.ID,
		UserID:         wd.UserID,
		Amount:         wd.Amount.String(),
		WalletAddress:  wd.WalletAddress,
		Status:         wd.Status,
		CreatedAt:      wd.CreatedAt,
		OwnerUsername:  wd.OwnerUsername,
		OwnerFirstName: wd.OwnerFirstName,
	}
}
