package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/smartcoinlabs/adrewards/docs"
	"github.com/smartcoinlabs/adrewards/internal/config"
	adminhandlers "github.com/smartcoinlabs/adrewards/internal/handlers/admin"
	authhandlers "github.com/smartcoinlabs/adrewards/internal/handlers/auth"
	rewardhandlers "github.com/smartcoinlabs/adrewards/internal/handlers/reward"
	withdrawhandlers "github.com/smartcoinlabs/adrewards/internal/handlers/withdraw"
	"github.com/smartcoinlabs/adrewards/internal/service"
	pkgauth "github.com/smartcoinlabs/adrewards/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	UserData(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	ViewAd(w http.ResponseWriter, r *http.Request)
}

type WithdrawHandler interface {
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	RequireAdmin(next http.Handler) http.Handler
	ListUsers(w http.ResponseWriter, r *http.Request)
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	SetWithdrawalStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	RewardHandler   RewardHandler
	WithdrawHandler WithdrawHandler
	AdminHandler    AdminHandler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.IdentityService, cfg.BaseURL),
		RewardHandler:   rewardhandlers.New(s.RewardService, cfg.BaseURL),
		WithdrawHandler: withdrawhandlers.New(s.WithdrawService, cfg.BaseURL),
		AdminHandler:    adminhandlers.New(s.AdminService, s.IdentityService, cfg.AdminID),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, jwtService pkgauth.JWTServiceInterface) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.AuthHandler.Login)
		r.Post("/logout", h.AuthHandler.Logout)

		r.Group(func(r chi.Router) {
			r.Use(pkgauth.AuthMiddleware(jwtService))
			r.Get("/user_data", h.AuthHandler.UserData)
			r.Post("/view_ad", h.RewardHandler.ViewAd)
			r.Post("/withdraw", h.WithdrawHandler.Withdraw)

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.AdminHandler.RequireAdmin)
				r.Get("/users", h.AdminHandler.ListUsers)
				r.Get("/withdrawals", h.AdminHandler.ListWithdrawals)
				r.Post("/withdrawals/{id}/{status}", h.AdminHandler.SetWithdrawalStatus)
			})
		})
	})

	return r
}
