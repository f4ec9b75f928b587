package services

import (
	"context"

	"github.com/moneypot/moneypot/internal/core/domain"
	"github.com/moneypot/moneypot/internal/dto"
)

// CategorySvcFacade manages the category tree used to label transactions.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	// CategoryHierarchy returns the full tree, roots at the top level with
	// their children nested recursively.
	CategoryHierarchy(ctx context.Context) ([]domain.CategoryNode, error)
}
