package seeders

import (
	"context"

	"github.com/shashiranjanraj/warehouse/app/models"
	"github.com/shashiranjanraj/warehouse/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func init() {
	Register("inventory", SeedInventory)
}

func ptr(s string) *string { return &s }

// SeedInventory fills an empty database with a small demo catalogue: three
// products, two suppliers, two storages and the links between them.
// It does nothing when products already exist.
func SeedInventory(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("seed: products present, skipping inventory", "products", count)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		products := []models.Product{
			{Name: "Bolt M8", Description: ptr("Zinc plated hex bolt, 8 mm")},
			{Name: "Nut M8", Description: ptr("Hex nut, 8 mm")},
			{Name: "Washer 8"},
		}
		suppliers := []models.Supplier{
			{Name: "Metiz Trade", Email: ptr("sales@metiz.example"), Phone: "+7(495)123-45-67"},
			{Name: "Krepezh Plus", Phone: "+7(812)765-43-21"},
		}
		storages := []models.Storage{
			{Name: "Central", Address: ptr("Moscow, Skladskaya 1")},
			{Name: "North"},
		}

		for _, rows := range []any{&products, &suppliers, &storages} {
			if err := tx.Create(rows).Error; err != nil {
				return err
			}
		}

		supplies := []models.ProductSupplier{
			{ProductID: products[0].ID, SupplierID: suppliers[0].ID},
			{ProductID: products[1].ID, SupplierID: suppliers[0].ID},
			{ProductID: products[2].ID, SupplierID: suppliers[1].ID},
		}
		if err := tx.Omit(clause.Associations).Create(&supplies).Error; err != nil {
			return err
		}

		purchases := []models.ProductStorage{
			{ProductID: products[0].ID, StorageID: storages[0].ID, Leftover: 120},
			{ProductID: products[1].ID, StorageID: storages[0].ID, Leftover: 3},
			{ProductID: products[2].ID, StorageID: storages[1].ID, Leftover: 0},
		}
		if err := tx.Omit(clause.Associations).Create(&purchases).Error; err != nil {
			return err
		}

		logger.Info("seed: inventory created",
			"products", len(products), "suppliers", len(suppliers), "storages", len(storages))
		return nil
	})
}
