// Package catalog contains application services for product master data:
// categories, products with their stored images, and payment methods.
package catalog

import (
	"context"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryService handles product category operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, companyID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(companyID, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		category.SetDescription(req.Description)
	}
	if req.CreatedBy != nil {
		category.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, companyID, categoryID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves all categories for a company
func (s *CategoryService) List(ctx context.Context, companyID uuid.UUID, page, pageSize int) ([]CategoryResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	filter := shared.Filter{Page: page, PageSize: pageSize, Filters: make(map[string]any)}
	categories, err := s.categoryRepo.FindAllForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.categoryRepo.CountForCompany(ctx, companyID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToCategoryResponses(categories), total, nil
}

// Update updates a category
func (s *CategoryService) Update(ctx context.Context, companyID, categoryID uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByIDForCompany(ctx, companyID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := category.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		category.SetDescription(*req.Description)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// Delete deletes a category
func (s *CategoryService) Delete(ctx context.Context, companyID, categoryID uuid.UUID) error {
	return s.categoryRepo.DeleteForCompany(ctx, companyID, categoryID)
}
