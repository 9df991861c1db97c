package notification

import (
	"context"

	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type mailSender interface {
	SendBookingEmails(ctx context.Context, booking *domain.Booking, pkg *domain.Package)
	SendContactEmail(ctx context.Context, msg *domain.ContactMessage)
}

type job func(ctx context.Context)

// Dispatcher runs outbound notifications on a single background worker so
// request handlers never block on SMTP. The queue is bounded: when it is
// full the notification is dropped with an error log rather than stalling
// the caller.
type Dispatcher struct {
	mailer mailSender
	jobs   chan job
	logger logger.Logger
}

func NewDispatcher(mailer mailSender, queueSize int, logger logger.Logger) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		mailer: mailer,
		jobs:   make(chan job, queueSize),
		logger: logger,
	}
}

// Start drains the queue until ctx is cancelled. Jobs run with the worker
// context, not the request context that enqueued them.
func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.Info("notification dispatcher started",
		logger.Int("queue_size", cap(d.jobs)),
	)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notification dispatcher stopped")
			return
		case j := <-d.jobs:
			j(ctx)
		}
	}
}

func (d *Dispatcher) NotifyBookingCreated(_ context.Context, booking *domain.Booking, pkg *domain.Package) {
	d.enqueue("booking", booking.ID, func(ctx context.Context) {
		d.mailer.SendBookingEmails(ctx, booking, pkg)
	})
}

func (d *Dispatcher) NotifyContactMessage(_ context.Context, msg *domain.ContactMessage) {
	d.enqueue("contact", msg.Email, func(ctx context.Context) {
		d.mailer.SendContactEmail(ctx, msg)
	})
}

func (d *Dispatcher) enqueue(kind, ref string, j job) {
	select {
	case d.jobs <- j:
	default:
		d.logger.Error("notification queue full, dropping",
			logger.String("kind", kind),
			logger.String("ref", ref),
		)
	}
}
