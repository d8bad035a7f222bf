package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/bizledger/backend/internal/domain/catalog"
	"github.com/bizledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, companyID uuid.UUID) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(companyID, "PRD-001", "Steel Bolt M8", "pcs", decimal.NewFromFloat(0.35))
	require.NoError(t, err)
	return product
}

func TestProductService_Create(t *testing.T) {
	companyID := uuid.New()

	t.Run("creates product", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorageService)
		service := NewProductService(repo, storage, passthroughUnitOfWork{})

		repo.On("ExistsByReference", mock.Anything, companyID, "PRD-001", (*uuid.UUID)(nil)).Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Product")).Return(nil)

		resp, err := service.Create(context.Background(), companyID, CreateProductRequest{
			Reference: "PRD-001",
			Name:      "Steel Bolt M8",
			Unit:      "pcs",
			UnitPrice: decimal.NewFromFloat(0.35),
		})

		require.NoError(t, err)
		assert.Equal(t, "PRD-001", resp.Reference)
		assert.Zero(t, resp.Stock)
		assert.False(t, resp.HasImage)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate reference", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorageService)
		service := NewProductService(repo, storage, passthroughUnitOfWork{})

		repo.On("ExistsByReference", mock.Anything, companyID, "PRD-001", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := service.Create(context.Background(), companyID, CreateProductRequest{
			Reference: "PRD-001",
			Name:      "Steel Bolt M8",
			UnitPrice: decimal.NewFromFloat(0.35),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestProductService_BatchUpsert(t *testing.T) {
	companyID := uuid.New()

	t.Run("rejects duplicate references within the batch before any write", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorageService)
		service := NewProductService(repo, storage, passthroughUnitOfWork{})

		_, err := service.BatchUpsert(context.Background(), companyID, BatchUpsertProductsRequest{
			Items: []BatchProductItem{
				{Reference: "PRD-001", Name: "Steel Bolt M8", UnitPrice: decimal.NewFromFloat(0.35)},
				{Reference: "PRD-001", Name: "Steel Bolt M8 (dup)", UnitPrice: decimal.NewFromFloat(0.40)},
			},
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
		repo.AssertNotCalled(t, "ExistsByReference", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("creates new items and updates items carrying an ID", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorageService)
		service := NewProductService(repo, storage, passthroughUnitOfWork{})

		existing := newTestProduct(t, companyID)
		repo.On("ExistsByReference", mock.Anything, companyID, "PRD-001", &existing.ID).Return(false, nil)
		repo.On("ExistsByReference", mock.Anything, companyID, "PRD-002", (*uuid.UUID)(nil)).Return(false, nil)
		repo.On("FindByIDForCompany", mock.Anything, companyID, existing.ID).Return(existing, nil)
		repo.On("SaveWithLock", mock.Anything, existing).Return(nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(p *catalog.Product) bool {
			return p.Reference == "PRD-002"
		})).Return(nil)

		resp, err := service.BatchUpsert(context.Background(), companyID, BatchUpsertProductsRequest{
			Items: []BatchProductItem{
				{ID: &existing.ID, Reference: "PRD-001", Name: "Steel Bolt M8 (long)", Unit: "pcs", UnitPrice: decimal.NewFromFloat(0.38)},
				{Reference: "PRD-002", Name: "Steel Nut M8", Unit: "pcs", UnitPrice: decimal.NewFromFloat(0.12)},
			},
		})

		require.NoError(t, err)
		require.Len(t, resp, 2)
		assert.Equal(t, "Steel Bolt M8 (long)", resp[0].Name)
		assert.Equal(t, "PRD-002", resp[1].Reference)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a reference already stored", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorageService)
		service := NewProductService(repo, storage, passthroughUnitOfWork{})

		repo.On("ExistsByReference", mock.Anything, companyID, "PRD-001", (*uuid.UUID)(nil)).Return(true, nil)

		_, err := service.BatchUpsert(context.Background(), companyID, BatchUpsertProductsRequest{
			Items: []BatchProductItem{
				{Reference: "PRD-001", Name: "Steel Bolt M8", UnitPrice: decimal.NewFromFloat(0.35)},
			},
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestProductService_Update_DoesNotTouchCounters(t *testing.T) {
	companyID := uuid.New()
	repo := new(MockProductRepository)
	storage := new(MockObjectStorageService)
	service := NewProductService(repo, storage, passthroughUnitOfWork{})

	product := newTestProduct(t, companyID)
	product.AdjustCounters(40, 12)

	repo.On("FindByIDForCompany", mock.Anything, companyID, product.ID).Return(product, nil)
	repo.On("SaveWithLock", mock.Anything, product).Return(nil)

	cost := decimal.NewFromFloat(0.20)
	resp, err := service.Update(context.Background(), companyID, product.ID, UpdateProductRequest{Cost: &cost})

	require.NoError(t, err)
	assert.True(t, cost.Equal(resp.Cost))
	assert.Equal(t, int64(40), resp.Stock)
	assert.Equal(t, int64(12), resp.SalesCount)
	repo.AssertExpectations(t)
}

func TestProductService_ImageUploadFlow(t *testing.T) {
	companyID := uuid.New()

	t.Run("rejects unsupported content type", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorageService)
		service := NewProductService(repo, storage, passthroughUnitOfWork{})

		_, err := service.GenerateImageUploadURL(context.Background(), companyID, uuid.New(), ImageUploadURLRequest{
			ContentType: "image/svg+xml",
		})

		require.Error(t, err)
		storage.AssertNotCalled(t, "GenerateUploadURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("presigns upload for jpeg", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorageService)
		service := NewProductService(repo, storage, passthroughUnitOfWork{})
		product := newTestProduct(t, companyID)

		expiresAt := time.Now().Add(15 * time.Minute)
		repo.On("FindByIDForCompany", mock.Anything, companyID, product.ID).Return(product, nil)
		storage.On("GenerateUploadURL", mock.Anything, mock.MatchedBy(func(key string) bool {
			return key != ""
		}), "image/jpeg", imageUploadURLExpiry).Return("https://storage.example/upload", expiresAt, nil)

		resp, err := service.GenerateImageUploadURL(context.Background(), companyID, product.ID, ImageUploadURLRequest{
			ContentType: "image/jpeg",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://storage.example/upload", resp.URL)
		assert.Contains(t, resp.StorageKey, product.ID.String())
		assert.Contains(t, resp.StorageKey, ".jpg")
	})

	t.Run("confirm rejects a key that never landed", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorageService)
		service := NewProductService(repo, storage, passthroughUnitOfWork{})
		product := newTestProduct(t, companyID)

		repo.On("FindByIDForCompany", mock.Anything, companyID, product.ID).Return(product, nil)
		storage.On("ObjectExists", mock.Anything, "missing-key").Return(false, nil)

		_, err := service.ConfirmImageUpload(context.Background(), companyID, product.ID, "missing-key")
		require.Error(t, err)
		repo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("confirm stores the key and drops the previous object", func(t *testing.T) {
		repo := new(MockProductRepository)
		storage := new(MockObjectStorageService)
		service := NewProductService(repo, storage, passthroughUnitOfWork{})
		product := newTestProduct(t, companyID)
		product.SetImageKey("old-key")

		repo.On("FindByIDForCompany", mock.Anything, companyID, product.ID).Return(product, nil)
		storage.On("ObjectExists", mock.Anything, "new-key").Return(true, nil)
		repo.On("SaveWithLock", mock.Anything, product).Return(nil)
		storage.On("DeleteObject", mock.Anything, "old-key").Return(nil)

		resp, err := service.ConfirmImageUpload(context.Background(), companyID, product.ID, "new-key")

		require.NoError(t, err)
		assert.True(t, resp.HasImage)
		storage.AssertExpectations(t)
	})
}

func TestProductService_GenerateImageDownloadURL_NoImage(t *testing.T) {
	companyID := uuid.New()
	repo := new(MockProductRepository)
	storage := new(MockObjectStorageService)
	service := NewProductService(repo, storage, passthroughUnitOfWork{})
	product := newTestProduct(t, companyID)

	repo.On("FindByIDForCompany", mock.Anything, companyID, product.ID).Return(product, nil)

	_, err := service.GenerateImageDownloadURL(context.Background(), companyID, product.ID)
	require.Error(t, err)
}
