package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/cachinadev/turismo-app/internal/domain"
)

const bookingColumns = `id, package_id, status, tour_date, adults, children,
		customer_name, customer_email, customer_phone, customer_country, customer_language,
		notes, total_price, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b       domain.Booking
		phone   sql.NullString
		country sql.NullString
		notes   sql.NullString
	)

	err := row.Scan(
		&b.ID, &b.PackageID, &b.Status, &b.Date, &b.People.Adults, &b.People.Children,
		&b.Customer.Name, &b.Customer.Email, &phone, &country, &b.Customer.Language,
		&notes, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.Customer.Phone = phone.String
	b.Customer.Country = country.String
	b.Notes = notes.String

	return &b, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, package_id, status, tour_date, adults, children,
				customer_name, customer_email, customer_phone, customer_country, customer_language,
				notes, total_price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.PackageID, b.Status, b.Date, b.People.Adults, b.People.Children,
		b.Customer.Name, b.Customer.Email, nullStr(b.Customer.Phone), nullStr(b.Customer.Country), b.Customer.Language,
		nullStr(b.Notes), b.TotalPrice, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// List returns one page of bookings, newest first, with package display
// fields denormalized via a left join: the reference is soft, so bookings
// survive package deletion with an empty package block.
func (r *BookingRepository) List(ctx context.Context, page, limit int) ([]*domain.BookingWithPackage, int, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM bookings`)
	if err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan booking count: %w", err)
	}

	query := `SELECT b.id, b.package_id, b.status, b.tour_date, b.adults, b.children,
				b.customer_name, b.customer_email, b.customer_phone, b.customer_country, b.customer_language,
				b.notes, b.total_price, b.created_at, b.updated_at,
				COALESCE(p.title, ''), COALESCE(p.slug, ''), COALESCE(p.city, ''),
				COALESCE(p.price, 0), COALESCE(p.currency, '')
			  FROM bookings b
			  LEFT JOIN packages p ON p.id = b.package_id
			  ORDER BY b.created_at DESC
			  LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingWithPackage
	for rows.Next() {
		var (
			b       domain.BookingWithPackage
			phone   sql.NullString
			country sql.NullString
			notes   sql.NullString
		)
		if err = rows.Scan(
			&b.ID, &b.PackageID, &b.Status, &b.Date, &b.People.Adults, &b.People.Children,
			&b.Customer.Name, &b.Customer.Email, &phone, &country, &b.Customer.Language,
			&notes, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
			&b.PackageTitle, &b.PackageSlug, &b.PackageCity,
			&b.PackagePrice, &b.PackageCurrency,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking row: %w", err)
		}
		b.Customer.Phone = phone.String
		b.Customer.Country = country.String
		b.Notes = notes.String
		res = append(res, &b)
	}

	return res, total, rows.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
