package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/cachinadev/turismo-app/internal/domain"
	"github.com/cachinadev/turismo-app/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var limaZone = time.FixedZone("business", -5*3600)

// 15:00 UTC on March 10th is 10:00 the same day in the business zone.
var bookingTestNow = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func newBookingService(
	t *testing.T,
	bookingRepo *mocks.MockBookingRepo,
	packageRepo *mocks.MockPackageRepo,
	notifier *mocks.MockBookingNotifier,
) *BookingService {
	t.Helper()
	svc := NewBookingService(bookingRepo, packageRepo, notifier, limaZone, newTestLogger(t))
	svc.now = func() time.Time { return bookingTestNow }
	return svc
}

func TestBookingService_Create_ComputesTotalFromBasePrice(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	packageRepo := mocks.NewMockPackageRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := newBookingService(t, bookingRepo, packageRepo, notifier)

	pkg := &domain.Package{ID: "p1", Title: "Islas Uros", Price: 50, Currency: "PEN", Active: true}
	packageRepo.EXPECT().GetByID(mock.Anything, "p1").Return(pkg, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, pkg).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PackageID: "p1",
		Date:      "2025-06-01",
		People:    domain.People{Adults: 2, Children: 1},
		Customer:  domain.Customer{Name: "Ana Quispe", Email: "Ana@Example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, 150.0, booking.TotalPrice)
	assert.Equal(t, "ana@example.com", booking.Customer.Email)
	assert.Equal(t, "es", booking.Customer.Language)
	// Bare date means midnight at the business offset, stored as UTC.
	assert.True(t, booking.Date.Equal(time.Date(2025, 6, 1, 5, 0, 0, 0, time.UTC)))
	assert.NotEmpty(t, booking.ID)
}

func TestBookingService_Create_ClampsPartyMinimums(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	packageRepo := mocks.NewMockPackageRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := newBookingService(t, bookingRepo, packageRepo, notifier)

	pkg := &domain.Package{ID: "p1", Price: 80, Active: true}
	packageRepo.EXPECT().GetByID(mock.Anything, "p1").Return(pkg, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, pkg).Return()

	booking, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PackageID: "p1",
		Date:      "2025-06-01",
		People:    domain.People{Adults: 0, Children: -3},
		Customer:  domain.Customer{Name: "Ana", Email: "ana@example.com"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, booking.People.Adults)
	assert.Equal(t, 0, booking.People.Children)
	assert.Equal(t, 80.0, booking.TotalPrice)
}

func TestBookingService_Create_RejectsPastDate(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	packageRepo := mocks.NewMockPackageRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := newBookingService(t, bookingRepo, packageRepo, notifier)

	pkg := &domain.Package{ID: "p1", Price: 50, Active: true}
	packageRepo.EXPECT().GetByID(mock.Anything, "p1").Return(pkg, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PackageID: "p1",
		Date:      "2025-03-09",
		Customer:  domain.Customer{Name: "Ana", Email: "ana@example.com"},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_AcceptsToday(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	packageRepo := mocks.NewMockPackageRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := newBookingService(t, bookingRepo, packageRepo, notifier)

	pkg := &domain.Package{ID: "p1", Price: 50, Active: true}
	packageRepo.EXPECT().GetByID(mock.Anything, "p1").Return(pkg, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, mock.Anything, pkg).Return()

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PackageID: "p1",
		Date:      "2025-03-10",
		Customer:  domain.Customer{Name: "Ana", Email: "ana@example.com"},
	})

	require.NoError(t, err)
}

func TestBookingService_Create_InactivePackage(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	packageRepo := mocks.NewMockPackageRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := newBookingService(t, bookingRepo, packageRepo, notifier)

	pkg := &domain.Package{ID: "p1", Price: 50, Active: false}
	packageRepo.EXPECT().GetByID(mock.Anything, "p1").Return(pkg, nil)

	_, err := svc.Create(context.Background(), domain.CreateBookingInput{
		PackageID: "p1",
		Date:      "2025-06-01",
		Customer:  domain.Customer{Name: "Ana", Email: "ana@example.com"},
	})

	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestBookingService_UpdateStatus_Transition(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	packageRepo := mocks.NewMockPackageRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := newBookingService(t, bookingRepo, packageRepo, notifier)

	current := &domain.Booking{ID: "b1", Status: domain.BookingStatusPending}
	updated := &domain.Booking{ID: "b1", Status: domain.BookingStatusInProgress}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(current, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusInProgress).Return(updated, nil)

	got, err := svc.UpdateStatus(context.Background(), "b1", "InProgress")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusInProgress, got.Status)
}

func TestBookingService_UpdateStatus_TerminalGuard(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	packageRepo := mocks.NewMockPackageRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := newBookingService(t, bookingRepo, packageRepo, notifier)

	current := &domain.Booking{ID: "b1", Status: domain.BookingStatusCompleted}
	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(current, nil)

	_, err := svc.UpdateStatus(context.Background(), "b1", "Cancelled")

	assert.ErrorIs(t, err, domain.ErrStatusFinal)
}

func TestBookingService_UpdateStatus_UnknownLabel(t *testing.T) {
	bookingRepo := mocks.NewMockBookingRepo(t)
	packageRepo := mocks.NewMockPackageRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	svc := newBookingService(t, bookingRepo, packageRepo, notifier)

	_, err := svc.UpdateStatus(context.Background(), "b1", "Bogus")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
