package ports

import (
	"context"

	"github.com/cachinadev/turismo-app/internal/domain"
)

type PackageRepo interface {
	Create(ctx context.Context, p *domain.Package) error
	Update(ctx context.Context, p *domain.Package) error
	GetByID(ctx context.Context, id string) (*domain.Package, error)
	GetBySlug(ctx context.Context, slug string, activeOnly bool) (*domain.Package, error)
	List(ctx context.Context, filter domain.PackageFilter) ([]*domain.Package, int, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Delete(ctx context.Context, id string) error
}
