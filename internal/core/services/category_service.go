package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moneypot/moneypot/internal/apperrors"
	"github.com/moneypot/moneypot/internal/core/domain"
	portsrepo "github.com/moneypot/moneypot/internal/core/ports/repositories"
	portssvc "github.com/moneypot/moneypot/internal/core/ports/services"
	"github.com/moneypot/moneypot/internal/dto"
	"github.com/moneypot/moneypot/internal/middleware"
)

// categoryService manages the category tree used to label transactions.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name must not be empty", apperrors.ErrValidation)
	}

	if req.ParentID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.ParentID); err != nil {
			return nil, fmt.Errorf("failed to verify parent category %s: %w", *req.ParentID, err)
		}
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       name,
		ParentID:   req.ParentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("name", name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	logger.Info("Category created",
		slog.String("category_id", category.CategoryID),
		slog.String("name", category.Name),
		slog.Bool("nested", category.ParentID != nil))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category %s: %w", categoryID, err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// CategoryHierarchy assembles the tree from one flat read. Children inherit
// the repository's name ordering.
func (s *categoryService) CategoryHierarchy(ctx context.Context) ([]domain.CategoryNode, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for hierarchy: %w", err)
	}

	children := make(map[string][]domain.Category)
	var roots []domain.Category
	for _, c := range categories {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		children[*c.ParentID] = append(children[*c.ParentID], c)
	}

	var build func(cats []domain.Category) []domain.CategoryNode
	build = func(cats []domain.Category) []domain.CategoryNode {
		nodes := make([]domain.CategoryNode, len(cats))
		for i, c := range cats {
			nodes[i] = domain.CategoryNode{
				Category: c,
				Children: build(children[c.CategoryID]),
			}
		}
		return nodes
	}
	return build(roots), nil
}
