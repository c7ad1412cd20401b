package repositories

import (
	"context"

	"github.com/shashiranjanraj/warehouse/app/models"
	"github.com/shashiranjanraj/warehouse/pkg/database"
	"gorm.io/gorm"
)

var storageRules = []rule{
	{kind: database.KindUnique, names: []string{"uq_storages_address", "address"}, target: ErrDuplicateAddress},
}

// StorageRepository handles database operations for Storage.
type StorageRepository struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) *StorageRepository {
	return &StorageRepository{db: db}
}

func (r *StorageRepository) Create(ctx context.Context, s *models.Storage) (uint, error) {
	s.ID = 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(s).Error
	})
	if err != nil {
		return 0, translate(ctx, "storage.create", err, storageRules...)
	}
	return s.ID, nil
}

func (r *StorageRepository) Update(ctx context.Context, s models.Storage) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Storage{}).
			Where("storage_id = ?", s.ID).
			Updates(map[string]any{
				"storage_name": s.Name,
				"address":      s.Address,
			}).Error
	})
	return translate(ctx, "storage.update", err, storageRules...)
}

func (r *StorageRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("storage_id = ?", id).Delete(&models.Storage{}).Error
	})
	return translate(ctx, "storage.delete", err)
}

func (r *StorageRepository) List(ctx context.Context) ([]models.Storage, error) {
	storages := []models.Storage{}
	if err := r.db.WithContext(ctx).Order("storage_id").Find(&storages).Error; err != nil {
		return nil, translate(ctx, "storage.list", err)
	}
	return storages, nil
}
