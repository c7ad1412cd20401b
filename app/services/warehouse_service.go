package services

import (
	"context"

	"github.com/shashiranjanraj/warehouse/app/models"
	"github.com/shashiranjanraj/warehouse/app/repositories"
	"github.com/shashiranjanraj/warehouse/app/requests"
	"github.com/shashiranjanraj/warehouse/pkg/validate"
	"gorm.io/gorm"
)

// WarehouseService is the operation set of the inventory API. Writes validate
// their request first and return *ValidationError without reaching the store.
type WarehouseService struct {
	products  *repositories.ProductRepository
	suppliers *repositories.SupplierRepository
	storages  *repositories.StorageRepository
	links     *repositories.LinkRepository
	reports   *repositories.ReportRepository
}

// NewWarehouseService wires every repository to db.
func NewWarehouseService(db *gorm.DB) *WarehouseService {
	return &WarehouseService{
		products:  repositories.NewProductRepository(db),
		suppliers: repositories.NewSupplierRepository(db),
		storages:  repositories.NewStorageRepository(db),
		links:     repositories.NewLinkRepository(db),
		reports:   repositories.NewReportRepository(db),
	}
}

func check(req interface{}) error {
	if errs := validate.Struct(req); validate.HasErrors(errs) {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// ─── Products ─────────────────────────────────────────────────────────────────

func (s *WarehouseService) CreateProduct(ctx context.Context, req requests.ProductAdd) (uint, error) {
	if err := check(req); err != nil {
		return 0, err
	}
	p := req.Model()
	return s.products.Create(ctx, &p)
}

func (s *WarehouseService) UpdateProduct(ctx context.Context, req requests.Product) error {
	if err := check(req); err != nil {
		return err
	}
	return s.products.Update(ctx, req.Model())
}

func (s *WarehouseService) DeleteProduct(ctx context.Context, id uint) error {
	return s.products.Delete(ctx, id)
}

func (s *WarehouseService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

// ─── Suppliers ────────────────────────────────────────────────────────────────

func (s *WarehouseService) CreateSupplier(ctx context.Context, req requests.SupplierAdd) (uint, error) {
	if err := check(req); err != nil {
		return 0, err
	}
	sup := req.Model()
	return s.suppliers.Create(ctx, &sup)
}

func (s *WarehouseService) UpdateSupplier(ctx context.Context, req requests.Supplier) error {
	if err := check(req); err != nil {
		return err
	}
	return s.suppliers.Update(ctx, req.Model())
}

func (s *WarehouseService) DeleteSupplier(ctx context.Context, id uint) error {
	return s.suppliers.Delete(ctx, id)
}

func (s *WarehouseService) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	return s.suppliers.List(ctx)
}

// ─── Storages ─────────────────────────────────────────────────────────────────

func (s *WarehouseService) CreateStorage(ctx context.Context, req requests.StorageAdd) (uint, error) {
	if err := check(req); err != nil {
		return 0, err
	}
	st := req.Model()
	return s.storages.Create(ctx, &st)
}

func (s *WarehouseService) UpdateStorage(ctx context.Context, req requests.Storage) error {
	if err := check(req); err != nil {
		return err
	}
	return s.storages.Update(ctx, req.Model())
}

func (s *WarehouseService) DeleteStorage(ctx context.Context, id uint) error {
	return s.storages.Delete(ctx, id)
}

func (s *WarehouseService) ListStorages(ctx context.Context) ([]models.Storage, error) {
	return s.storages.List(ctx)
}

// ─── Links ────────────────────────────────────────────────────────────────────

func (s *WarehouseService) CreateSupply(ctx context.Context, req requests.Supply) error {
	if err := check(req); err != nil {
		return err
	}
	return s.links.CreateSupply(ctx, req.Model())
}

func (s *WarehouseService) DeleteSupply(ctx context.Context, productID, supplierID uint) error {
	return s.links.DeleteSupply(ctx, productID, supplierID)
}

func (s *WarehouseService) CreatePurchase(ctx context.Context, req requests.Purchase) error {
	if err := check(req); err != nil {
		return err
	}
	return s.links.CreatePurchase(ctx, req.Model())
}

func (s *WarehouseService) UpdatePurchase(ctx context.Context, req requests.Purchase) error {
	if err := check(req); err != nil {
		return err
	}
	return s.links.UpdatePurchase(ctx, req.Model())
}

func (s *WarehouseService) DeletePurchase(ctx context.Context, productID, storageID uint) error {
	return s.links.DeletePurchase(ctx, productID, storageID)
}

// ─── Reports ──────────────────────────────────────────────────────────────────

// Leftovers lists stock rows, only those below req.Threshold when it is set.
func (s *WarehouseService) Leftovers(ctx context.Context, req requests.Leftovers) ([]models.Leftover, error) {
	if err := check(req); err != nil {
		return nil, err
	}
	return s.reports.Leftovers(ctx, req.Threshold)
}

// SuppliedProducts returns repositories.ErrNotFound for an unknown supplier.
func (s *WarehouseService) SuppliedProducts(ctx context.Context, supplierID uint) ([]models.Product, error) {
	return s.reports.SuppliedProducts(ctx, supplierID)
}

func (s *WarehouseService) ProductsWithSuppliers(ctx context.Context) ([]models.ProductWithSupplier, error) {
	return s.reports.ProductsWithSuppliers(ctx)
}
