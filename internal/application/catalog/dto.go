package catalog

import (
	"time"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Category DTOs
// =============================================================================

// CreateCategoryRequest represents a request to create a product category
type CreateCategoryRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"max=500"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// UpdateCategoryRequest represents a request to update a product category
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		CompanyID:   c.CompanyID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain Categories to responses
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// =============================================================================
// Product DTOs
// =============================================================================

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Reference  string          `json:"reference" binding:"required,min=1,max=50"`
	Name       string          `json:"name" binding:"required,min=1,max=200"`
	CategoryID *uuid.UUID      `json:"category_id"`
	Unit       string          `json:"unit" binding:"max=50"`
	Cost       decimal.Decimal `json:"cost"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	CreatedBy  *uuid.UUID      `json:"-"`
}

// UpdateProductRequest represents a request to update a product. Stock and
// sales counters are never writable here; only document flows move them.
type UpdateProductRequest struct {
	Reference  *string          `json:"reference" binding:"omitempty,min=1,max=50"`
	Name       *string          `json:"name" binding:"omitempty,min=1,max=200"`
	CategoryID *uuid.UUID       `json:"category_id"`
	Unit       *string          `json:"unit" binding:"omitempty,max=50"`
	Cost       *decimal.Decimal `json:"cost"`
	UnitPrice  *decimal.Decimal `json:"unit_price"`
}

// BatchProductItem is one entry of a batch upsert. Items carrying an ID
// update that product; items without one create a new product.
type BatchProductItem struct {
	ID         *uuid.UUID      `json:"id"`
	Reference  string          `json:"reference" binding:"required,min=1,max=50"`
	Name       string          `json:"name" binding:"required,min=1,max=200"`
	CategoryID *uuid.UUID      `json:"category_id"`
	Unit       string          `json:"unit" binding:"max=50"`
	Cost       decimal.Decimal `json:"cost"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// BatchUpsertProductsRequest creates and updates products in one call
type BatchUpsertProductsRequest struct {
	Items     []BatchProductItem `json:"items" binding:"required,min=1,max=500,dive"`
	CreatedBy *uuid.UUID         `json:"-"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID         uuid.UUID       `json:"id"`
	CompanyID  uuid.UUID       `json:"company_id"`
	Reference  string          `json:"reference"`
	Name       string          `json:"name"`
	CategoryID *uuid.UUID      `json:"category_id,omitempty"`
	Unit       string          `json:"unit"`
	Cost       decimal.Decimal `json:"cost"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Stock      int64           `json:"stock"`
	SalesCount int64           `json:"sales_count"`
	HasImage   bool            `json:"has_image"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	Version    int             `json:"version"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		CompanyID:  p.CompanyID,
		Reference:  p.Reference,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		Unit:       p.Unit,
		Cost:       p.Cost,
		UnitPrice:  p.UnitPrice,
		Stock:      p.Stock,
		SalesCount: p.SalesCount,
		HasImage:   p.ImageKey != "",
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		Version:    p.Version,
	}
}

// ToProductResponses converts a slice of domain Products to responses
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// =============================================================================
// Product image DTOs
// =============================================================================

// ImageUploadURLRequest asks for a presigned URL to upload a product image
type ImageUploadURLRequest struct {
	ContentType string `json:"content_type" binding:"required"`
}

// PresignedURLResponse carries a presigned URL and its expiry
type PresignedURLResponse struct {
	URL        string    `json:"url"`
	StorageKey string    `json:"storage_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// =============================================================================
// Payment method DTOs
// =============================================================================

// CreatePaymentMethodRequest represents a request to create a payment method
type CreatePaymentMethodRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdatePaymentMethodRequest represents a request to update a payment method
type UpdatePaymentMethodRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=200"`
}

// PaymentMethodResponse represents a payment method in API responses
type PaymentMethodResponse struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToPaymentMethodResponse converts a domain PaymentMethod to its response
func ToPaymentMethodResponse(pm *catalog.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:        pm.ID,
		CompanyID: pm.CompanyID,
		Name:      pm.Name,
		CreatedAt: pm.CreatedAt,
		UpdatedAt: pm.UpdatedAt,
	}
}

// ToPaymentMethodResponses converts a slice of PaymentMethods to responses
func ToPaymentMethodResponses(methods []catalog.PaymentMethod) []PaymentMethodResponse {
	responses := make([]PaymentMethodResponse, len(methods))
	for i := range methods {
		responses[i] = ToPaymentMethodResponse(&methods[i])
	}
	return responses
}
