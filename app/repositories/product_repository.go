package repositories

import (
	"context"

	"github.com/shashiranjanraj/warehouse/app/models"
	"github.com/shashiranjanraj/warehouse/pkg/database"
	"gorm.io/gorm"
)

var productRules = []rule{
	{kind: database.KindUnique, names: []string{"uq_products_description", "product_description"}, target: ErrDuplicateDescription},
}

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts p and returns its generated id. p.ID is ignored on input.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (uint, error) {
	p.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(p).Error
	})
	if err != nil {
		return 0, translate(ctx, "product.create", err, productRules...)
	}
	return p.ID, nil
}

// Update overwrites name and description of the product with p.ID.
// Nothing happens when no such product exists.
func (r *ProductRepository) Update(ctx context.Context, p models.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Product{}).
			Where("product_id = ?", p.ID).
			Updates(map[string]any{
				"product_name":        p.Name,
				"product_description": p.Description,
			}).Error
	})
	return translate(ctx, "product.update", err, productRules...)
}

// Delete removes the product and, by cascade, its supply and stock links.
// Deleting a missing product is not an error.
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("product_id = ?", id).Delete(&models.Product{}).Error
	})
	return translate(ctx, "product.delete", err)
}

// List returns every product ordered by id.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := r.db.WithContext(ctx).Order("product_id").Find(&products).Error
	if err != nil {
		return nil, translate(ctx, "product.list", err)
	}
	return products, nil
}
