package repositories

import (
	"context"

	"github.com/shashiranjanraj/warehouse/app/models"
	"gorm.io/gorm"
)

// ReportRepository runs the read-only queries that join across link tables.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Leftovers lists stock per product and storage ordered by product id, then
// storage id. With a threshold only rows where leftover < *threshold are
// returned; without one every stock row is.
func (r *ReportRepository) Leftovers(ctx context.Context, threshold *int) ([]models.Leftover, error) {
	rows := []models.Leftover{}

	q := r.db.WithContext(ctx).
		Table("products AS p").
		Select("p.product_id, p.product_name, s.storage_id, s.storage_name, ps.leftover").
		Joins("JOIN products_and_storages AS ps ON ps.product_id = p.product_id").
		Joins("JOIN storages AS s ON s.storage_id = ps.storage_id")
	if threshold != nil {
		q = q.Where("ps.leftover < ?", *threshold)
	}

	if err := q.Order("p.product_id, s.storage_id").Scan(&rows).Error; err != nil {
		return nil, translate(ctx, "report.leftovers", err)
	}
	return rows, nil
}

// SuppliedProducts lists the products supplierID supplies, ordered by id.
// It returns ErrNotFound when the supplier does not exist and an empty list
// when it supplies nothing.
func (r *ReportRepository) SuppliedProducts(ctx context.Context, supplierID uint) ([]models.Product, error) {
	products := []models.Product{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Supplier{}).Where("supplier_id = ?", supplierID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}

		return tx.Model(&models.Product{}).
			Select("products.product_id, products.product_name, products.product_description").
			Joins("JOIN products_and_suppliers AS ps ON ps.product_id = products.product_id").
			Where("ps.supplier_id = ?", supplierID).
			Order("products.product_id").
			Find(&products).Error
	})
	if err != nil {
		return nil, translate(ctx, "report.supplied_products", err)
	}
	return products, nil
}

// ProductsWithSuppliers lists every supply link with product and supplier
// details, ordered by product name.
func (r *ReportRepository) ProductsWithSuppliers(ctx context.Context) ([]models.ProductWithSupplier, error) {
	rows := []models.ProductWithSupplier{}

	err := r.db.WithContext(ctx).
		Table("products AS p").
		Select("p.product_id, p.product_name, sup.supplier_id, sup.supplier_name, sup.email, sup.phone").
		Joins("JOIN products_and_suppliers AS ps ON ps.product_id = p.product_id").
		Joins("JOIN suppliers AS sup ON sup.supplier_id = ps.supplier_id").
		Order("p.product_name, p.product_id, sup.supplier_id").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(ctx, "report.products_with_suppliers", err)
	}
	return rows, nil
}
