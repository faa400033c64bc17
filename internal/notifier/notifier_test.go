package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []*telego.SendMessageParams
	err  error
}

func (f *fakeSender) SendMessage(_ context.Context, params *telego.SendMessageParams) (*telego.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, params)
	return &telego.Message{}, f.err
}

func (f *fakeSender) messages() []*telego.SendMessageParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*telego.SendMessageParams(nil), f.sent...)
}

func TestNotifyAdmin_Delivers(t *testing.T) {
	sender := &fakeSender{}
	service := New(sender, 999)
	service.Start()

	service.NotifyAdmin("<b>New Withdrawal Request!</b>")
	service.Stop()

	sent := sender.messages()
	assert.Len(t, sent, 1)
	assert.Equal(t, "<b>New Withdrawal Request!</b>", sent[0].Text)
	assert.Equal(t, string(telego.ModeHTML), sent[0].ParseMode)
	assert.Equal(t, int64(999), sent[0].ChatID.ID)
}

func TestNotify_DeliveryFailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("telegram unreachable")}
	service := New(sender, 999)
	service.Start()

	// The producer must not see or feel the failure.
	service.NotifyAdmin("first")
	service.NotifyAdmin("second")
	service.Stop()

	assert.Len(t, sender.messages(), 2)
}

func TestNotify_NilSenderDrops(t *testing.T) {
	service := New(nil, 999)

	// Must not panic or block without workers running.
	service.NotifyAdmin("nobody is listening")
}

func TestNotify_UnconfiguredChatDrops(t *testing.T) {
	sender := &fakeSender{}
	service := New(sender, 0)
	service.Start()

	service.NotifyAdmin("no chat configured")
	service.Stop()

	assert.Empty(t, sender.messages())
}

func TestStop_DrainsQueuedMessages(t *testing.T) {
	sender := &fakeSender{}
	service := New(sender, 999)

	// Enqueue before any worker runs, then start and stop immediately:
	// everything accepted into the queue must still go out.
	for i := 0; i < 10; i++ {
		service.NotifyAdmin("queued before shutdown")
	}
	service.Start()
	service.Stop()

	assert.Len(t, sender.messages(), 10)
}

func TestNotify_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	sender := &fakeSender{}
	service := New(sender, 999)
	// Workers are never started, so the queue only drains on Stop.

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < queueSize+10; i++ {
			service.Notify(999, "burst")
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked on a full queue")
	}
}
