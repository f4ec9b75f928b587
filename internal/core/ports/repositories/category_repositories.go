package repositories

import (
	"context"

	"github.com/moneypot/moneypot/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence operations for categories.
type CategoryRepositoryFacade interface {
	// SaveCategory inserts a new category. The parent, when set, must already
	// exist.
	SaveCategory(ctx context.Context, category domain.Category) error
	// FindCategoryByID returns apperrors.ErrNotFound when missing.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	// ListCategories returns every category, roots first then by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
