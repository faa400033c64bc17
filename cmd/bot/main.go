package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/smartcoinlabs/adrewards/internal/bot"
	"github.com/smartcoinlabs/adrewards/internal/config"
	"github.com/smartcoinlabs/adrewards/pkg/clients"
	"github.com/smartcoinlabs/adrewards/pkg/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.New()
	if err := logger.InitLogger(cfg); err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}

	b, err := bot.New(cfg.BotToken, cfg.BaseURL, clients.NewHTTPClient())
	if err != nil {
		zap.L().Fatal("Can't create bot: ", zap.Error(err))
	}

	if err := b.Start(ctx); err != nil {
		zap.L().Fatal("Bot exited with error: ", zap.Error(err))
	}

	zap.L().Info("Bot stopped")
}
