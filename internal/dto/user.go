package dto

import "github.com/smartcoinlabs/adrewards/internal/domain"

// UserDTO is the user snapshot returned by login, user_data, view_ad and
// withdraw. Earnings travel as a decimal string.
type UserDTO struct {
	ID           int    `json:"id" example:"1"`
	TelegramID   int64  `json:"telegram_id" example:"7645815913"`
	FirstName    string `json:"first_name" example:"Ali"`
	Username     string `json:"username" example:"ali_dev"`
	Earnings     string `json:"earnings" example:"0.5491"`
	AdsViewed    int    `json:"adsViewed" example:"50"`
	ReferralLink string `json:"referralLink" example:"https://ads.example.com/?ref=REF7645815913"`
}

func NewUserDTO(user *domain.User, baseURL string) UserDTO {
	return UserDTO{
		ID:           user.ID,
		TelegramID:   user.TelegramID,
		FirstName:    user.FirstName,
		Username:     user.Username,
		Earnings:     user.Balance.String(),
		AdsViewed:    user.AdsViewed,
		ReferralLink: baseURL + "/?ref=" + user.ReferralCode,
	}
}
