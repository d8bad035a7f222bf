package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const (
	imageUploadURLExpiry   = 15 * time.Minute
	imageDownloadURLExpiry = 1 * time.Hour
)

// ProductService handles product operations, including the presigned-URL
// flow for product images.
type ProductService struct {
	productRepo catalog.ProductRepository
	storage     ObjectStorageService
	uow         shared.UnitOfWork
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, storage ObjectStorageService, uow shared.UnitOfWork) *ProductService {
	return &ProductService{productRepo: productRepo, storage: storage, uow: uow}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, companyID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsByReference(ctx, companyID, req.Reference, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this reference already exists")
	}

	product, err := catalog.NewProduct(companyID, req.Reference, req.Name, req.Unit, req.UnitPrice)
	if err != nil {
		return nil, err
	}
	if !req.Cost.IsZero() {
		if err := product.SetPricing(req.Cost, req.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		product.SetCategory(req.CategoryID)
	}
	if req.CreatedBy != nil {
		product.SetCreatedBy(*req.CreatedBy)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// BatchUpsert creates and updates products in one transaction. Duplicate
// references within the batch are rejected before any row is touched.
func (s *ProductService) BatchUpsert(ctx context.Context, companyID uuid.UUID, req BatchUpsertProductsRequest) ([]ProductResponse, error) {
	seen := make(map[string]struct{}, len(req.Items))
	for _, item := range req.Items {
		if _, dup := seen[item.Reference]; dup {
			return nil, shared.NewDomainError("INVALID_INPUT", "Duplicate reference in batch: "+item.Reference)
		}
		seen[item.Reference] = struct{}{}
	}

	type upsert struct {
		product *catalog.Product
		update  bool
	}
	upserts := make([]upsert, 0, len(req.Items))
	for _, item := range req.Items {
		exists, err := s.productRepo.ExistsByReference(ctx, companyID, item.Reference, item.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with reference "+item.Reference+" already exists")
		}

		if item.ID != nil {
			product, err := s.productRepo.FindByIDForCompany(ctx, companyID, *item.ID)
			if err != nil {
				return nil, err
			}
			if err := product.SetReference(item.Reference); err != nil {
				return nil, err
			}
			if err := product.SetName(item.Name); err != nil {
				return nil, err
			}
			product.SetCategory(item.CategoryID)
			product.SetUnit(item.Unit)
			if err := product.SetPricing(item.Cost, item.UnitPrice); err != nil {
				return nil, err
			}
			product.IncrementVersion()
			upserts = append(upserts, upsert{product: product, update: true})
			continue
		}

		product, err := catalog.NewProduct(companyID, item.Reference, item.Name, item.Unit, item.UnitPrice)
		if err != nil {
			return nil, err
		}
		if !item.Cost.IsZero() {
			if err := product.SetPricing(item.Cost, item.UnitPrice); err != nil {
				return nil, err
			}
		}
		product.SetCategory(item.CategoryID)
		if req.CreatedBy != nil {
			product.SetCreatedBy(*req.CreatedBy)
		}
		upserts = append(upserts, upsert{product: product})
	}

	err := s.uow.Execute(ctx, func(ctx context.Context) error {
		for _, u := range upserts {
			if u.update {
				if err := s.productRepo.SaveWithLock(ctx, u.product); err != nil {
					return err
				}
				continue
			}
			if err := s.productRepo.Save(ctx, u.product); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(upserts))
	for i, u := range upserts {
		responses[i] = ToProductResponse(u.product)
	}
	return responses, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, companyID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, companyID uuid.UUID, filter ProductListFilter) ([]ProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}

	products, err := s.productRepo.FindAllForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.CountForCompany(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update updates a product's master data. Counters are untouched.
func (s *ProductService) Update(ctx context.Context, companyID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}

	if req.Reference != nil && *req.Reference != product.Reference {
		exists, err := s.productRepo.ExistsByReference(ctx, companyID, *req.Reference, &productID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this reference already exists")
		}
		if err := product.SetReference(*req.Reference); err != nil {
			return nil, err
		}
	}

	if req.Name != nil {
		if err := product.SetName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.CategoryID != nil {
		product.SetCategory(req.CategoryID)
	}
	if req.Unit != nil {
		product.SetUnit(*req.Unit)
	}
	if req.Cost != nil || req.UnitPrice != nil {
		cost := product.Cost
		unitPrice := product.UnitPrice
		if req.Cost != nil {
			cost = *req.Cost
		}
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}
		if err := product.SetPricing(cost, unitPrice); err != nil {
			return nil, err
		}
	}

	product.IncrementVersion()
	if err := s.productRepo.SaveWithLock(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete deletes a product and its stored image, if any
func (s *ProductService) Delete(ctx context.Context, companyID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID)
	if err != nil {
		return err
	}

	if err := s.productRepo.DeleteForCompany(ctx, companyID, productID); err != nil {
		return err
	}

	// Best effort: a dangling object is harmless, a failed delete should
	// not resurrect the product.
	if product.ImageKey != "" {
		_ = s.storage.DeleteObject(ctx, product.ImageKey)
	}
	return nil
}

// GenerateImageUploadURL returns a presigned URL the client PUTs the image
// to, along with the storage key to confirm afterwards.
func (s *ProductService) GenerateImageUploadURL(ctx context.Context, companyID, productID uuid.UUID, req ImageUploadURLRequest) (*PresignedURLResponse, error) {
	ext, ok := allowedImageContentTypes[req.ContentType]
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unsupported image content type: "+req.ContentType)
	}

	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}

	key := productImageKey(companyID, product.ID, ext)
	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, req.ContentType, imageUploadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &PresignedURLResponse{URL: url, StorageKey: key, ExpiresAt: expiresAt}, nil
}

// ConfirmImageUpload records the uploaded object as the product image after
// verifying it actually landed in the bucket.
func (s *ProductService) ConfirmImageUpload(ctx context.Context, companyID, productID uuid.UUID, storageKey string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.ObjectExists(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Uploaded image not found in storage")
	}

	previous := product.ImageKey
	product.SetImageKey(storageKey)
	product.IncrementVersion()
	if err := s.productRepo.SaveWithLock(ctx, product); err != nil {
		return nil, err
	}

	if previous != "" && previous != storageKey {
		_ = s.storage.DeleteObject(ctx, previous)
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GenerateImageDownloadURL returns a presigned URL for the product image
func (s *ProductService) GenerateImageDownloadURL(ctx context.Context, companyID, productID uuid.UUID) (*PresignedURLResponse, error) {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	if product.ImageKey == "" {
		return nil, shared.NewDomainError("NOT_FOUND", "Product has no image")
	}

	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, product.ImageKey, imageDownloadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &PresignedURLResponse{URL: url, StorageKey: product.ImageKey, ExpiresAt: expiresAt}, nil
}

// DeleteImage removes the product image from storage and clears the key
func (s *ProductService) DeleteImage(ctx context.Context, companyID, productID uuid.UUID) error {
	product, err := s.productRepo.FindByIDForCompany(ctx, companyID, productID)
	if err != nil {
		return err
	}
	if product.ImageKey == "" {
		return nil
	}

	if err := s.storage.DeleteObject(ctx, product.ImageKey); err != nil {
		return err
	}

	product.SetImageKey("")
	product.IncrementVersion()
	return s.productRepo.SaveWithLock(ctx, product)
}

func productImageKey(companyID, productID uuid.UUID, ext string) string {
	return fmt.Sprintf("companies/%s/products/%s/image%s", companyID, productID, ext)
}
