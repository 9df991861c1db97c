package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/cachinadev/turismo-app/internal/domain"
)

const packageColumns = `id, title, slug, description, city, country, category,
		price, currency, duration_hours,
		languages, highlights, includes, excludes, media, location,
		is_promo, promo_percent, promo_price, promo_start_at, promo_end_at,
		active, created_at, updated_at`

type PackageRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPackageRepo(db *dbpg.DB) *PackageRepository {
	return &PackageRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPackage(row rowScanner) (*domain.Package, error) {
	var (
		p          domain.Package
		languages  []byte
		highlights []byte
		includes   []byte
		excludes   []byte
		media      []byte
		location   []byte
		promoStart sql.NullTime
		promoEnd   sql.NullTime
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &p.City, &p.Country, &p.Category,
		&p.Price, &p.Currency, &p.DurationHours,
		&languages, &highlights, &includes, &excludes, &media, &location,
		&p.IsPromo, &p.PromoPercent, &p.PromoPrice, &promoStart, &promoEnd,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, col := range []struct {
		raw []byte
		dst any
	}{
		{languages, &p.Languages},
		{highlights, &p.Highlights},
		{includes, &p.Includes},
		{excludes, &p.Excludes},
		{media, &p.Media},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("decode package document field: %w", err)
		}
	}
	if len(location) > 0 {
		var loc domain.Location
		if err := json.Unmarshal(location, &loc); err != nil {
			return nil, fmt.Errorf("decode package location: %w", err)
		}
		p.Location = &loc
	}
	if promoStart.Valid {
		p.PromoStartAt = &promoStart.Time
	}
	if promoEnd.Valid {
		p.PromoEndAt = &promoEnd.Time
	}

	return &p, nil
}

func packageDocFields(p *domain.Package) (languages, highlights, includes, excludes, media []byte, location any, err error) {
	if languages, err = json.Marshal(p.Languages); err != nil {
		return
	}
	if highlights, err = json.Marshal(p.Highlights); err != nil {
		return
	}
	if includes, err = json.Marshal(p.Includes); err != nil {
		return
	}
	if excludes, err = json.Marshal(p.Excludes); err != nil {
		return
	}
	if media, err = json.Marshal(p.Media); err != nil {
		return
	}
	if p.Location != nil {
		var raw []byte
		if raw, err = json.Marshal(p.Location); err != nil {
			return
		}
		location = raw
	}
	return
}

func (r *PackageRepository) Create(ctx context.Context, p *domain.Package) error {
	languages, highlights, includes, excludes, media, location, err := packageDocFields(p)
	if err != nil {
		return fmt.Errorf("encode package: %w", err)
	}

	query := `INSERT INTO packages (id, title, slug, description, city, country, category,
				price, currency, duration_hours,
				languages, highlights, includes, excludes, media, location,
				is_promo, promo_percent, promo_price, promo_start_at, promo_end_at,
				active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
				$11, $12, $13, $14, $15, $16,
				$17, $18, $19, $20, $21, $22, $23, $24)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Title, p.Slug, p.Description, p.City, p.Country, p.Category,
		p.Price, p.Currency, p.DurationHours,
		languages, highlights, includes, excludes, media, location,
		p.IsPromo, p.PromoPercent, p.PromoPrice, p.PromoStartAt, p.PromoEndAt,
		p.Active, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert package: %w", err)
	}

	return nil
}

func (r *PackageRepository) Update(ctx context.Context, p *domain.Package) error {
	languages, highlights, includes, excludes, media, location, err := packageDocFields(p)
	if err != nil {
		return fmt.Errorf("encode package: %w", err)
	}

	query := `UPDATE packages
			  SET title=$2, slug=$3, description=$4, city=$5, country=$6, category=$7,
				price=$8, currency=$9, duration_hours=$10,
				languages=$11, highlights=$12, includes=$13, excludes=$14, media=$15, location=$16,
				is_promo=$17, promo_percent=$18, promo_price=$19, promo_start_at=$20, promo_end_at=$21,
				active=$22, updated_at=$23
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.Title, p.Slug, p.Description, p.City, p.Country, p.Category,
		p.Price, p.Currency, p.DurationHours,
		languages, highlights, includes, excludes, media, location,
		p.IsPromo, p.PromoPercent, p.PromoPrice, p.PromoStartAt, p.PromoEndAt,
		p.Active, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("update package: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("package rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPackageNotFound
	}

	return nil
}

func (r *PackageRepository) GetByID(ctx context.Context, id string) (*domain.Package, error) {
	query := `SELECT ` + packageColumns + `
			  FROM packages
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}

	p, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("scan package: %w", err)
	}

	return p, nil
}

func (r *PackageRepository) GetBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Package, error) {
	query := `SELECT ` + packageColumns + `
			  FROM packages
			  WHERE slug=$1 AND ($2 = false OR active = true)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, slug, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("get package by slug: %w", err)
	}

	p, err := scanPackage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("scan package: %w", err)
	}

	return p, nil
}

func (r *PackageRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM packages
				WHERE slug = $1 AND ($2 = '' OR id <> $2)
			  )`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, slug, excludeID)
	if err != nil {
		return false, fmt.Errorf("probe slug: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan slug probe: %w", err)
	}

	return exists, nil
}

func (r *PackageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM packages WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete package: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("package rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPackageNotFound
	}

	return nil
}

// List applies the catalog filter and returns one page plus the total count
// of matching rows. The promo window check for promo=active happens in the
// service since it depends on the request clock.
func (r *PackageRepository) List(ctx context.Context, f domain.PackageFilter) ([]*domain.Package, int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Active != nil {
		where = append(where, "active = "+arg(*f.Active))
	}
	if f.Promo == "any" || f.Promo == "active" {
		where = append(where, "is_promo = true")
	}
	if f.City != "" {
		where = append(where, "city = "+arg(f.City))
	}
	if f.Category != "" {
		where = append(where, "category = "+arg(f.Category))
	}
	if f.Query != "" {
		needle := arg("%" + f.Query + "%")
		where = append(where, "(title ILIKE "+needle+" OR description ILIKE "+needle+")")
	}
	if f.MinPrice != nil {
		where = append(where, "price >= "+arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		where = append(where, "price <= "+arg(*f.MaxPrice))
	}
	if f.MaxDurationHours != nil {
		where = append(where, "duration_hours <= "+arg(*f.MaxDurationHours))
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM packages` + cond
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count packages: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan package count: %w", err)
	}

	order := " ORDER BY created_at DESC"
	switch f.Sort {
	case domain.SortPriceAsc:
		order = " ORDER BY price ASC, created_at DESC"
	case domain.SortPriceDesc:
		order = " ORDER BY price DESC, created_at DESC"
	}

	query := `SELECT ` + packageColumns + ` FROM packages` + cond + order +
		" LIMIT " + arg(f.Limit) + " OFFSET " + arg((f.Page-1)*f.Limit)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	var res []*domain.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan package: %w", err)
		}
		res = append(res, p)
	}

	return res, total, rows.Err()
}
