package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/service/ports"
)

const (
	maxNotesLen  = 1000
	maxPeople    = 99
	bareDateForm = "2006-01-02"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type BookingService struct {
	bookingRepo ports.BookingRepo
	packageRepo ports.PackageRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
	loc         *time.Location
	now         func() time.Time
}

// NewBookingService wires the booking flows. loc is the business reference
// timezone used to interpret bare tour dates and "today".
func NewBookingService(
	bookingRepo ports.BookingRepo,
	packageRepo ports.PackageRepo,
	notifier ports.BookingNotifier,
	loc *time.Location,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		notifier:    notifier,
		logger:      logger,
		loc:         loc,
		now:         time.Now,
	}
}

// Create books a tour. The package must exist and be active; the total is
// always recomputed server-side from the package base price, never taken
// from the client, and stays frozen afterwards. The confirmation emails are
// handed to the notifier and never block or fail the booking.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	pkg, err := s.packageRepo.GetByID(ctx, input.PackageID)
	if err != nil {
		return nil, fmt.Errorf("check package: %w", err)
	}
	if !pkg.Active {
		return nil, domain.ErrPackageNotFound
	}

	date, err := s.normalizeTourDate(input.Date)
	if err != nil {
		return nil, err
	}

	customer, err := normalizeCustomer(input.Customer)
	if err != nil {
		return nil, err
	}

	people := input.People
	if people.Adults < 1 {
		people.Adults = 1
	}
	if people.Children < 0 {
		people.Children = 0
	}
	if people.Adults > maxPeople || people.Children > maxPeople {
		return nil, fmt.Errorf("%w: party size is too large", domain.ErrValidation)
	}

	notes := strings.TrimSpace(input.Notes)
	if len(notes) > maxNotesLen {
		return nil, fmt.Errorf("%w: notes must be at most %d characters", domain.ErrValidation, maxNotesLen)
	}

	// Total is keyed off the base price at booking time, deliberately not
	// the promotional effective price.
	total := pkg.Price * float64(people.Adults+people.Children)

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		PackageID:  pkg.ID,
		Status:     domain.BookingStatusPending,
		Date:       date,
		People:     people,
		Customer:   customer,
		Notes:      notes,
		TotalPrice: total,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("package_id", pkg.ID),
		logger.String("status", string(booking.Status)),
	)

	s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, pkg)

	return booking, nil
}

// normalizeTourDate accepts RFC3339 timestamps or bare YYYY-MM-DD values.
// Bare dates mean local midnight in the business timezone. The resulting
// calendar day must not be before "today" at that same reference.
func (s *BookingService) normalizeTourDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}

	var date time.Time
	if t, err := time.ParseInLocation(bareDateForm, raw, s.loc); err == nil {
		date = t
	} else if t, err := time.Parse(time.RFC3339, raw); err == nil {
		date = t
	} else {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, raw)
	}

	today := dayStart(s.now().In(s.loc))
	if dayStart(date.In(s.loc)).Before(today) {
		return time.Time{}, fmt.Errorf("%w: date must not be in the past", domain.ErrValidation)
	}

	return date.UTC(), nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func normalizeCustomer(c domain.Customer) (domain.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if len(c.Name) < 2 || len(c.Name) > 100 {
		return c, fmt.Errorf("%w: customer name must be 2..100 characters", domain.ErrValidation)
	}
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if !emailRe.MatchString(c.Email) {
		return c, fmt.Errorf("%w: invalid customer email", domain.ErrValidation)
	}
	c.Phone = strings.TrimSpace(c.Phone)
	if len(c.Phone) > 40 {
		return c, fmt.Errorf("%w: customer phone is too long", domain.ErrValidation)
	}
	c.Country = strings.TrimSpace(c.Country)
	c.Language = strings.ToLower(strings.TrimSpace(c.Language))
	if c.Language == "" {
		c.Language = "es"
	}
	return c, nil
}

func (s *BookingService) List(ctx context.Context, page, limit int) ([]*domain.BookingWithPackage, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return s.bookingRepo.List(ctx, page, limit)
}

// UpdateStatus moves a booking through the lifecycle. Unknown labels are
// validation errors; Completed and Cancelled are terminal.
func (s *BookingService) UpdateStatus(ctx context.Context, id, statusLabel string) (*domain.Booking, error) {
	status, ok := domain.ParseBookingStatus(statusLabel)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, statusLabel)
	}

	current, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking: %w", err)
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot leave %s", domain.ErrStatusFinal, current.Status)
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", id),
		logger.String("from", string(current.Status)),
		logger.String("to", string(status)),
	)

	return updated, nil
}
