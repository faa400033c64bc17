package reward

import (
	"context"
	"errors"
	"net/http"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/dto"
	"github.com/smartcoinlabs/adrewards/internal/service/rewardservice"
	"github.com/smartcoinlabs/adrewards/pkg/auth"
	"github.com/smartcoinlabs/adrewards/pkg/utils"
)

type Service interface {
	RecordView(ctx context.Context, userID int) (*domain.User, error)
}

type RewardHandler struct {
	rewardService Service
	baseURL       string
}

func New(rewardService Service, baseURL string) *RewardHandler {
	return &RewardHandler{
		rewardService: rewardService,
		baseURL:       baseURL,
	}
}

// ViewAd godoc
//
//	@Summary		Record one ad view
//	@Description	Credit the per-view reward, milestone bonus and referral commission, and return the updated user.
//	@Tags			Rewards
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ViewAdResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authenticated"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/view_ad [post]
func (h *RewardHandler) ViewAd(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	user, err := h.rewardService.RecordView(r.Context(), userID)
	if err != nil {
		if errors.Is(err, rewardservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.ViewAdResponseDTO{
		Success: true,
		Message: "Ad viewed successfully",
		User:    dto.NewUserDTO(user, h.baseURL),
	})
}
