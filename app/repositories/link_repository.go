package repositories

import (
	"context"

	"github.com/shashiranjanraj/warehouse/app/models"
	"github.com/shashiranjanraj/warehouse/pkg/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The only unique key on a link table is its composite primary key.
var linkRules = []rule{
	{kind: database.KindUnique, target: ErrDuplicateLink},
	{kind: database.KindCheck, names: []string{leftoverCheck, "leftover"}, target: ErrNegativeLeftover},
	{kind: database.KindForeignKey, target: ErrUnknownReference},
}

// LinkRepository manages supplies (product/supplier links) and purchases
// (product/storage stock rows).
type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// CreateSupply records that l.SupplierID supplies l.ProductID.
func (r *LinkRepository) CreateSupply(ctx context.Context, l models.ProductSupplier) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&l).Error
	})
	return translate(ctx, "supply.create", err, linkRules...)
}

// DeleteSupply removes the link if present.
func (r *LinkRepository) DeleteSupply(ctx context.Context, productID, supplierID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("product_id = ? AND supplier_id = ?", productID, supplierID).
			Delete(&models.ProductSupplier{}).Error
	})
	return translate(ctx, "supply.delete", err)
}

// CreatePurchase stores l.Leftover units of l.ProductID at l.StorageID.
func (r *LinkRepository) CreatePurchase(ctx context.Context, l models.ProductStorage) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&l).Error
	})
	return translate(ctx, "purchase.create", err, linkRules...)
}

// UpdatePurchase overwrites the leftover of an existing stock row.
// Nothing happens when the row does not exist.
func (r *LinkRepository) UpdatePurchase(ctx context.Context, l models.ProductStorage) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.ProductStorage{}).
			Where("product_id = ? AND storage_id = ?", l.ProductID, l.StorageID).
			Update("leftover", l.Leftover).Error
	})
	return translate(ctx, "purchase.update", err, linkRules...)
}

// DeletePurchase removes the stock row if present.
func (r *LinkRepository) DeletePurchase(ctx context.Context, productID, storageID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("product_id = ? AND storage_id = ?", productID, storageID).
			Delete(&models.ProductStorage{}).Error
	})
	return translate(ctx, "purchase.delete", err)
}
