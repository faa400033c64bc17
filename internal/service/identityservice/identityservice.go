package identityservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smartcoinlabs/adrewards/internal/domain"
	"github.com/smartcoinlabs/adrewards/pkg/auth"
)

type Repo interface {
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

type Notifier interface {
	NotifyAdmin(text string)
}

var ErrUserNotFound = errors.New("user not found")

const sessionTTL = 24 * time.Hour

type Service struct {
	userRepo   Repo
	verifier   auth.WidgetVerifierInterface
	jwtService auth.JWTServiceInterface
	notifier   Notifier
}

func New(repo Repo, verifier auth.WidgetVerifierInterface, jwtService auth.JWTServiceInterface, notifier Notifier) *Service {
	return &Service{
		userRepo:   repo,
		verifier:   verifier,
		jwtService: jwtService,
		notifier:   notifier,
	}
}

// Login validates a signed widget assertion and upserts the user: first
// successful login creates the row (with its immutable referral code and
// optional referrer link), later logins only refresh the profile fields and
// auth metadata.
func (s *Service) Login(ctx context.Context, assertion auth.Assertion) (*domain.User, error) {
	if err := s.verifier.Verify(assertion); err != nil {
		zap.L().Info("login assertion rejected", zap.Error(err))
		return nil, err
	}

	telegramID, err := strconv.ParseInt(assertion["id"], 10, 64)
	if err != nil {
		return nil, auth.ErrMalformedAssertion
	}
	authDate, err := strconv.ParseInt(assertion["auth_date"], 10, 64)
	if err != nil {
		return nil, auth.ErrMalformedAssertion
	}

	user, err := s.userRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}

	if user == nil {
		user = &domain.User{
			TelegramID:   telegramID,
			FirstName:    assertion["first_name"],
			LastName:     assertion["last_name"],
			Username:     assertion["username"],
			PhotoURL:     assertion["photo_url"],
			AuthDate:     authDate,
			Hash:         assertion["hash"],
			ReferralCode: ReferralCode(telegramID),
		}
		if referrer := s.resolveReferrer(ctx, assertion, telegramID); referrer != nil {
			user.ReferrerID = &referrer.ID
		}

		user, err = s.userRepo.Create(ctx, user)
		if err != nil {
			zap.L().Error("can't create user: ", zap.Error(err))
			return nil, err
		}

		s.notifier.NotifyAdmin(fmt.Sprintf("New user registered: %s (ID: %d)", user.DisplayName(), telegramID))
		zap.L().Info("user successfully registered", zap.Int64("telegramID", telegramID))
		return user, nil
	}

	user.FirstName = assertion["first_name"]
	user.LastName = assertion["last_name"]
	user.Username = assertion["username"]
	user.PhotoURL = assertion["photo_url"]
	user.AuthDate = authDate
	user.Hash = assertion["hash"]

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		zap.L().Error("can't update user profile: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully authenticated", zap.Int64("telegramID", telegramID))
	return user, nil
}

// resolveReferrer maps the assertion's referral hints to an existing user.
// Both hints are caller-controlled (referrer_id is not even covered by the
// signature), so anything that does not resolve to a real, different user is
// dropped: login must still succeed.
func (s *Service) resolveReferrer(ctx context.Context, assertion auth.Assertion, telegramID int64) *domain.User {
	if raw := assertion["referrer_id"]; raw != "" {
		referrerID, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return nil
		}
		referrer, err := s.userRepo.FindByID(ctx, referrerID)
		if err != nil || referrer == nil || referrer.TelegramID == telegramID {
			zap.L().Warn("dropping unresolvable referrer_id", zap.String("referrerID", raw), zap.Error(err))
			return nil
		}
		return referrer
	}

	// The companion bot forwards /start deep-link payloads as a referral code.
	code := assertion["referral_code"]
	if !strings.HasPrefix(code, "REF") {
		return nil
	}
	referrerTelegramID, convErr := strconv.ParseInt(strings.TrimPrefix(code, "REF"), 10, 64)
	if convErr != nil || referrerTelegramID == telegramID {
		return nil
	}
	referrer, err := s.userRepo.FindByTelegramID(ctx, referrerTelegramID)
	if err != nil || referrer == nil {
		zap.L().Warn("dropping unresolvable referral code", zap.String("code", code), zap.Error(err))
		return nil
	}
	return referrer
}

func (s *Service) GetUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(sessionTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// ReferralCode derives the immutable referral code for an identity.
func ReferralCode(telegramID int64) string {
	return fmt.Sprintf("REF%d", telegramID)
}
