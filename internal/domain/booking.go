package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "Pending"
	BookingStatusInProgress BookingStatus = "InProgress"
	BookingStatusCompleted  BookingStatus = "Completed"
	BookingStatusCancelled  BookingStatus = "Cancelled"
)

// ParseBookingStatus maps a wire label to the status enum.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

// IsFinal reports whether no further transition is allowed out of s.
func (s BookingStatus) IsFinal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo enforces the lifecycle: Completed and Cancelled are
// terminal, everything else moves freely between the known labels.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s.IsFinal() {
		return s == next
	}
	return true
}

type People struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Country  string `json:"country,omitempty"`
	Language string `json:"language"`
}

type Booking struct {
	ID        string        `json:"id"`
	PackageID string        `json:"packageId"`
	Status    BookingStatus `json:"status"`
	Date      time.Time     `json:"date"`
	People    People        `json:"people"`
	Customer  Customer      `json:"customer"`
	Notes     string        `json:"notes,omitempty"`

	// TotalPrice is computed once at creation from the package base price
	// and never recomputed afterwards.
	TotalPrice float64 `json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingWithPackage denormalizes display fields of the referenced package
// for the operator listing. The reference is soft: the package block is
// empty when the package has been deleted.
type BookingWithPackage struct {
	Booking
	PackageTitle    string  `json:"packageTitle"`
	PackageSlug     string  `json:"packageSlug"`
	PackageCity     string  `json:"packageCity"`
	PackagePrice    float64 `json:"packagePrice"`
	PackageCurrency string  `json:"packageCurrency"`
}

type CreateBookingInput struct {
	PackageID string
	// Date is the raw client value: RFC3339 or bare YYYY-MM-DD.
	Date     string
	People   People
	Customer Customer
	Notes    string
}

type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}
