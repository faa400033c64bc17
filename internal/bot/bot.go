package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"go.uber.org/zap"

	"github.com/smartcoinlabs/adrewards/internal/dto"
	pkgauth "github.com/smartcoinlabs/adrewards/pkg/auth"
	"github.com/smartcoinlabs/adrewards/pkg/clients"
)

// Bot is the companion process: it greets users on /start and performs the
// same login flow the site widget does, signing its own assertion with the
// shared bot token.
type Bot struct {
	Instance *telego.Bot
	client   clients.HTTPClientI
	apiURL   string
	signer   pkgauth.WidgetVerifierInterface
}

func New(token, apiURL string, client clients.HTTPClientI) (*Bot, error) {
	tgBot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		Instance: tgBot,
		client:   client,
		apiURL:   strings.TrimRight(apiURL, "/"),
		signer:   pkgauth.NewWidgetVerifier(token),
	}, nil
}

func (b *Bot) login(user *telego.User, referralCode string) (*dto.LoginResponseDTO, error) {
	assertion := pkgauth.Assertion{
		"id":         strconv.FormatInt(user.ID, 10),
		"first_name": user.FirstName,
		"auth_date":  strconv.FormatInt(time.Now().Unix(), 10),
	}
	if user.LastName != "" {
		assertion["last_name"] = user.LastName
	}
	if user.Username != "" {
		assertion["username"] = user.Username
	}
	if referralCode != "" {
		assertion["referral_code"] = referralCode
	}
	assertion["hash"] = b.signer.Sign(assertion)

	status, body, err := b.client.PostJSON(b.apiURL+"/api/login", assertion)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("login failed with status %d", status)
	}

	var resp dto.LoginResponseDTO
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("login rejected: %s", resp.Message)
	}
	return &resp, nil
}

// startArg extracts the deep-link payload from a /start message, the way
// referral links pass it ("/start REF123…").
func startArg(text string) string {
	if parts := strings.SplitN(text, " ", 2); len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func (b *Bot) Start(ctx context.Context) error {
	updates, err := b.Instance.UpdatesViaLongPolling(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start long polling: %w", err)
	}

	handler, err := th.NewBotHandler(b.Instance, updates)
	if err != nil {
		return fmt.Errorf("failed to create bot handler: %w", err)
	}

	// /start command
	handler.Handle(func(ctx *th.Context, update telego.Update) error {
		message := update.Message
		from := message.From
		if from == nil {
			return nil
		}

		referralCode := startArg(message.Text)

		zap.L().Info("user started the bot",
			zap.Int64("telegramID", from.ID),
			zap.String("firstName", from.FirstName),
			zap.String("referralCode", referralCode),
		)

		var text string
		resp, err := b.login(from, referralCode)
		if err != nil {
			zap.L().Error("login via API failed", zap.Int64("telegramID", from.ID), zap.Error(err))
			text = "❌ Login failed, please try again later."
		} else {
			text = fmt.Sprintf(
				"✅ Welcome, %s! You are logged in.\n\n👀 Ads viewed: %d\n💰 Earnings: %s\n\n🔗 Your referral link:\n%s",
				from.FirstName, resp.User.AdsViewed, resp.User.Earnings, resp.User.ReferralLink,
			)
		}

		_, _ = ctx.Bot().SendMessage(ctx.Context(), tu.Message(
			tu.ID(message.Chat.ID),
			text,
		))
		return nil
	}, th.CommandEqual("start"))

	zap.L().Info("Bot started polling")
	handler.Start()
	return nil
}
