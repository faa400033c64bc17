package notifier

import (
	"context"
	"time"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sender is satisfied by *telego.Bot.
type Sender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

const (
	queueSize   = 100
	workerCount = 4
	sendTimeout = 15 * time.Second
)

type message struct {
	chatID int64
	text   string
}

// Service is the best-effort notification sink: producers enqueue without
// blocking, a small worker group performs the actual network delivery.
// Delivery failures are logged and never reach the producer.
type Service struct {
	sender      Sender
	adminChatID int64
	queue       chan message
	g           errgroup.Group
}

func New(sender Sender, adminChatID int64) *Service {
	return &Service{
		sender:      sender,
		adminChatID: adminChatID,
		queue:       make(chan message, queueSize),
	}
}

func (s *Service) Start() {
	zap.L().Info("Notifier started")
	for i := 0; i < workerCount; i++ {
		s.g.Go(func() error {
			s.worker()
			return nil
		})
	}
}

// Workers exit only when the queue is closed, so everything enqueued before
// Stop still gets delivered; per-message timeouts bound the drain.
func (s *Service) worker() {
	for msg := range s.queue {
		s.deliver(msg)
	}
}

func (s *Service) deliver(msg message) {
	sendCtx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	_, err := s.sender.SendMessage(sendCtx, tu.Message(tu.ID(msg.chatID), msg.text).WithParseMode(telego.ModeHTML))
	if err != nil {
		zap.L().Error("failed to deliver notification", zap.Int64("chatID", msg.chatID), zap.Error(err))
	}
}

// NotifyAdmin enqueues a message to the operator channel.
func (s *Service) NotifyAdmin(text string) {
	s.Notify(s.adminChatID, text)
}

// Notify never blocks: when the queue is full the message is dropped.
func (s *Service) Notify(chatID int64, text string) {
	if s.sender == nil || chatID == 0 {
		zap.L().Debug("notification sink not configured, dropping message")
		return
	}
	select {
	case s.queue <- message{chatID: chatID, text: text}:
	default:
		zap.L().Warn("notification queue full, dropping message", zap.Int64("chatID", chatID))
	}
}

// Stop drains the queue and waits for in-flight deliveries.
func (s *Service) Stop() {
	close(s.queue)
	s.g.Wait()
}
