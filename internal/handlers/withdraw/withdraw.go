package withdraw

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/dto"
	"github.com/smartcoinlabs/adrewards/internal/service/withdrawservice"
	"github.com/smartcoinlabs/adrewards/pkg/auth"
	"github.com/smartcoinlabs/adrewards/pkg/utils"
)

type Service interface {
	Withdraw(ctx context.Context, userID int, walletAddress string) (*domain.Withdrawal, *domain.User, error)
}

type WithdrawHandler struct {
	withdrawService Service
	baseURL         string
}

func New(withdrawService Service, baseURL string) *WithdrawHandler {
	return &WithdrawHandler{
		withdrawService: withdrawService,
		baseURL:         baseURL,
	}
}

// Withdraw godoc
//
//	@Summary		Request a payout of the full balance
//	@Description	Validates the destination wallet and eligibility, zeroes the balance and records a pending withdrawal.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawResponseDTO
//	@Failure		400		{object}	utils.Response	"Validation failed"
//	@Failure		401		{object}	utils.Response	"Not authenticated"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/withdraw [post]
func (h *WithdrawHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, user, err := h.withdrawService.Withdraw(r.Context(), userID, req.TonWalletAddress)
	if err != nil {
		switch {
		case errors.Is(err, withdrawservice.ErrMissingAddress),
			errors.Is(err, withdrawservice.ErrInvalidAddress),
			errors.Is(err, withdrawservice.ErrNotEnoughViews),
			errors.Is(err, withdrawservice.ErrNoEarnings):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawResponseDTO{
		Success: true,
		Message: "Withdrawal request submitted successfully",
		User:    dto.NewUserDTO(user, h.baseURL),
	})
}
