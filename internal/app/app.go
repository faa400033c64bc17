package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mymmrac/telego"
	"go.uber.org/zap"

	"github.com/smartcoinlabs/adrewards/internal/config"
	"github.com/smartcoinlabs/adrewards/internal/handlers"
	"github.com/smartcoinlabs/adrewards/internal/notifier"
	"github.com/smartcoinlabs/adrewards/internal/pg"
	"github.com/smartcoinlabs/adrewards/internal/repo"
	"github.com/smartcoinlabs/adrewards/internal/service"
	pkgauth "github.com/smartcoinlabs/adrewards/pkg/auth"
	"github.com/smartcoinlabs/adrewards/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	ntf  *notifier.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	var sender notifier.Sender
	if cfg.BotToken != "" {
		tgBot, err := telego.NewBot(cfg.BotToken)
		if err != nil {
			zap.L().Error("can't create telegram bot: ", zap.Error(err))
			return fmt.Errorf("can't create telegram bot: %w", err)
		}
		sender = tgBot
	} else {
		zap.L().Warn("telegram bot token not configured, notifications disabled")
	}

	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	a.cfg = cfg
	a.ntf = notifier.New(sender, cfg.AdminChatID)
	a.repo = repo.New(conn)
	a.srv, err = service.New(a.repo, txManager, cfg, jwtService, a.ntf)
	if err != nil {
		return fmt.Errorf("can't build services: %w", err)
	}
	a.api = handlers.New(a.srv, cfg)

	a.ntf.Start()

	if err = a.startHTTPServer(ctx, jwtService); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context, jwtService pkgauth.JWTServiceInterface) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router, jwtService)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		a.ntf.Stop()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
