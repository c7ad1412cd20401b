package repositories

import (
	"context"

	"github.com/shashiranjanraj/warehouse/app/models"
	"github.com/shashiranjanraj/warehouse/pkg/database"
	"gorm.io/gorm"
)

var supplierRules = []rule{
	{kind: database.KindUnique, names: []string{"uq_suppliers_email", "email"}, target: ErrDuplicateEmail},
	{kind: database.KindUnique, names: []string{"uq_suppliers_phone", "phone"}, target: ErrDuplicatePhone},
}

// SupplierRepository handles database operations for Supplier.
type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// Create inserts s and returns its generated id. A taken email or phone
// yields ErrDuplicateEmail or ErrDuplicatePhone.
func (r *SupplierRepository) Create(ctx context.Context, s *models.Supplier) (uint, error) {
	s.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(s).Error
	})
	if err != nil {
		return 0, translate(ctx, "supplier.create", err, supplierRules...)
	}
	return s.ID, nil
}

// Update overwrites every editable field of the supplier with s.ID.
// Nothing happens when no such supplier exists.
func (r *SupplierRepository) Update(ctx context.Context, s models.Supplier) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Supplier{}).
			Where("supplier_id = ?", s.ID).
			Updates(map[string]any{
				"supplier_name": s.Name,
				"email":         s.Email,
				"phone":         s.Phone,
			}).Error
	})
	return translate(ctx, "supplier.update", err, supplierRules...)
}

// Delete removes the supplier and its supply links.
func (r *SupplierRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("supplier_id = ?", id).Delete(&models.Supplier{}).Error
	})
	return translate(ctx, "supplier.delete", err)
}

// List returns every supplier ordered by id.
func (r *SupplierRepository) List(ctx context.Context) ([]models.Supplier, error) {
	suppliers := []models.Supplier{}
	if err := r.db.WithContext(ctx).Order("supplier_id").Find(&suppliers).Error; err != nil {
		return nil, translate(ctx, "supplier.list", err)
	}
	return suppliers, nil
}
