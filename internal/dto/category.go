package dto

import (
	"github.com/moneypot/moneypot/internal/core/domain"
)

// CreateCategoryRequest defines the payload for registering a category.
// ParentID nests the category under an existing one.
type CreateCategoryRequest struct {
	Name     string  `json:"name" binding:"required"`
	ParentID *string `json:"parentID"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string  `json:"categoryID"`
	Name       string  `json:"name"`
	ParentID   *string `json:"parentID,omitempty"`
}

// CategoryNodeResponse is one node of the category tree.
type CategoryNodeResponse struct {
	CategoryID string                 `json:"categoryID"`
	Name       string                 `json:"name"`
	Children   []CategoryNodeResponse `json:"children"`
}

// ToCategoryResponse converts a domain.Category to its response DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		ParentID:   c.ParentID,
	}
}

// ToListCategoryResponse converts a slice of categories.
func ToListCategoryResponse(cats []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		res[i] = ToCategoryResponse(&c)
	}
	return res
}

// ToCategoryNodeResponses converts a category tree.
func ToCategoryNodeResponses(nodes []domain.CategoryNode) []CategoryNodeResponse {
	res := make([]CategoryNodeResponse, len(nodes))
	for i, n := range nodes {
		res[i] = CategoryNodeResponse{
			CategoryID: n.CategoryID,
			Name:       n.Name,
			Children:   ToCategoryNodeResponses(n.Children),
		}
	}
	return res
}
