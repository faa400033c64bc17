package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/internal/dto"
	"github.com/smartcoinlabs/adrewards/internal/service/identityservice"
	pkgauth "github.com/smartcoinlabs/adrewards/pkg/auth"
	"github.com/smartcoinlabs/adrewards/pkg/utils"
)

type Service interface {
	Login(ctx context.Context, assertion pkgauth.Assertion) (*domain.User, error)
	GetUser(ctx context.Context, userID int) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	identityService Service
	baseURL         string
}

func New(identityService Service, baseURL string) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
		baseURL:         baseURL,
	}
}

// The widget posts numbers for id and auth_date; everything is flattened to
// the string form the signature was computed over.
func decodeAssertion(r io.Reader) (pkgauth.Assertion, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	raw := map[string]any{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}

	assertion := pkgauth.Assertion{}
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			assertion[key] = v
		case json.Number:
			assertion[key] = v.String()
		case bool:
			assertion[key] = strconv.FormatBool(v)
		}
	}
	return assertion, nil
}

// Login godoc
//
//	@Summary		Log in with a signed login-widget assertion
//	@Description	Verify the identity assertion, create or update the user and return a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	dto.LoginResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed assertion"
//	@Failure		403	{object}	utils.Response	"Invalid or stale assertion"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	assertion, err := decodeAssertion(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.identityService.Login(r.Context(), assertion)
	if err != nil {
		switch {
		case errors.Is(err, pkgauth.ErrMalformedAssertion):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, pkgauth.ErrInvalidSignature), errors.Is(err, pkgauth.ErrStaleAssertion):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.identityService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    dto.NewUserDTO(user, h.baseURL),
	})
}

// UserData godoc
//
//	@Summary		Get the authenticated user's snapshot
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.UserDataResponseDTO
//	@Failure		401	{object}	utils.Response	"Not authenticated"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user_data [get]
func (h *AuthHandler) UserData(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	user, err := h.identityService.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, identityservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.UserDataResponseDTO{
		Success: true,
		User:    dto.NewUserDTO(user, h.baseURL),
	})
}

// Logout godoc
//
//	@Summary		Log out
//	@Description	Sessions are stateless bearer tokens; the endpoint exists for the front end and always succeeds.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	dto.LogoutResponseDTO
//	@Router			/api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.LogoutResponseDTO{
		Success: true,
		Message: "Logged out",
	})
}
