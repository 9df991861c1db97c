package ports

import (
	"context"

	"github.com/cachinadev/turismo-app/internal/domain"
)

// BookingNotifier is the fire-and-forget side of booking creation: the
// implementation only enqueues work, failures never reach the caller.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, pkg *domain.Package)
	NotifyContactMessage(ctx context.Context, msg *domain.ContactMessage)
}
