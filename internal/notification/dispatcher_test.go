package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"

	"github.com/cachinadev/turismo-app/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type recordingSender struct {
	mu       sync.Mutex
	bookings []string
	contacts []string
}

func (r *recordingSender) SendBookingEmails(_ context.Context, b *domain.Booking, _ *domain.Package) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, b.ID)
}

func (r *recordingSender) SendContactEmail(_ context.Context, m *domain.ContactMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, m.Email)
}

func TestDispatcher_DeliversBookingNotification(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 8, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()

	d.NotifyBookingCreated(context.Background(), &domain.Booking{ID: "b1"}, &domain.Package{Title: "Uros"})
	d.NotifyContactMessage(context.Background(), &domain.ContactMessage{Email: "a@b.pe"})

	assert.Eventually(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return len(sender.bookings) == 1 && len(sender.contacts) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop on context cancel")
	}

	assert.Equal(t, []string{"b1"}, sender.bookings)
	assert.Equal(t, []string{"a@b.pe"}, sender.contacts)
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, 1, newTestLogger(t))

	// No worker running: the second enqueue must not block.
	d.NotifyBookingCreated(context.Background(), &domain.Booking{ID: "b1"}, &domain.Package{})

	finished := make(chan struct{})
	go func() {
		d.NotifyBookingCreated(context.Background(), &domain.Booking{ID: "b2"}, &domain.Package{})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on full queue")
	}
}
