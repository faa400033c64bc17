package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/dto"
	"github.com/smartcoinlabs/adrewards/internal/service/adminservice"
	"github.com/smartcoinlabs/adrewards/pkg/auth"
	"github.com/smartcoinlabs/adrewards/pkg/utils"
)

type Service interface {
	ListUsers(ctx context.Context, search string) ([]domain.User, error)
	ListWithdrawals(ctx context.Context, search string) ([]domain.WithdrawalWithOwner, error)
	SetWithdrawalStatus(ctx context.Context, id int, status string) (*domain.Withdrawal, error)
}

type IdentityService interface {
	GetUser(ctx context.Context, userID int) (*domain.User, error)
}

type AdminHandler struct {
	adminService    Service
	identityService IdentityService
	adminTelegramID int64
}

func New(adminService Service, identityService IdentityService, adminTelegramID int64) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		identityService: identityService,
		adminTelegramID: adminTelegramID,
	}
}

// RequireAdmin rejects callers whose resolved user is not the configured
// administrator. Every failure mode gets the same generic response.
func (h *AdminHandler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(auth.UserIDKey).(int)
		if !ok {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		user, err := h.identityService.GetUser(r.Context(), userID)
		if err != nil || h.adminTelegramID == 0 || user.TelegramID != h.adminTelegramID {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListUsers godoc
//
//	@Summary		List users
//	@Description	List all users, optionally filtered by a substring of the handle or identity.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			search	query		string	false	"Substring filter"
//	@Success		200		{object}	dto.AdminUsersResponseDTO
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.AdminUsersResponseDTO{Success: true, Users: make([]dto.AdminUserDTO, len(users))}
	for i, user := range users {
		response.Users[i] = dto.NewAdminUserDTO(user)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawal requests
//	@Description	List withdrawals joined with owner identity, optionally filtered by handle or wallet address substring.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			search	query		string	false	"Substring filter"
//	@Success		200		{object}	dto.AdminWithdrawalsResponseDTO
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.adminService.ListWithdrawals(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.AdminWithdrawalsResponseDTO{Success: true, Withdrawals: make([]dto.AdminWithdrawalDTO, len(withdrawals))}
	for i, wd := range withdrawals {
		response.Withdrawals[i] = dto.NewAdminWithdrawalDTO(wd)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SetWithdrawalStatus godoc
//
//	@Summary		Mark a withdrawal completed or rejected
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id		path		int		true	"Withdrawal id"
//	@Param			status	path		string	true	"completed or rejected"
//	@Success		200		{object}	dto.AdminStatusResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid id or status"
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/{status} [post]
func (h *AdminHandler) SetWithdrawalStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}

	withdrawal, err := h.adminService.SetWithdrawalStatus(r.Context(), id, chi.URLParam(r, "status"))
	if err != nil {
		switch {
		case errors.Is(err, adminservice.ErrInvalidStatus):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, adminservice.ErrWithdrawalNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Withdrawal not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AdminStatusResponseDTO{
		Success: true,
		Message: "Withdrawal status updated",
		ID:      withdrawal.ID,
		Status:  withdrawal.Status,
	})
}
