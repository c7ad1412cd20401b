package migrations

import (
	"github.com/shashiranjanraj/warehouse/app/models"
	"github.com/shashiranjanraj/warehouse/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260301000000_create_products_table", &CreateProductsTable{})
	migration.Register("20260301000001_create_suppliers_table", &CreateSuppliersTable{})
	migration.Register("20260301000002_create_storages_table", &CreateStoragesTable{})
	migration.Register("20260301000003_create_products_and_suppliers_table", &CreateProductsAndSuppliersTable{})
	migration.Register("20260301000004_create_products_and_storages_table", &CreateProductsAndStoragesTable{})
	migration.Register("20260301000005_restore_unique_indexes", &RestoreUniqueIndexes{})
}

// -------- 0000: products --------

var productDescriptionIndex = uniqueIndex{name: "uq_products_description", table: "products", column: "product_description", nullable: true}

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return err
	}
	return productDescriptionIndex.create(db)
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

// -------- 0001: suppliers --------

var (
	supplierEmailIndex = uniqueIndex{name: "uq_suppliers_email", table: "suppliers", column: "email", nullable: true}
	supplierPhoneIndex = uniqueIndex{name: "uq_suppliers_phone", table: "suppliers", column: "phone"}
)

type CreateSuppliersTable struct{}

func (m *CreateSuppliersTable) Up(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Supplier{}); err != nil {
		return err
	}
	if err := supplierEmailIndex.create(db); err != nil {
		return err
	}
	return supplierPhoneIndex.create(db)
}

func (m *CreateSuppliersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("suppliers")
}

// -------- 0002: storages --------

var storageAddressIndex = uniqueIndex{name: "uq_storages_address", table: "storages", column: "address", nullable: true}

type CreateStoragesTable struct{}

func (m *CreateStoragesTable) Up(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Storage{}); err != nil {
		return err
	}
	return storageAddressIndex.create(db)
}

func (m *CreateStoragesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("storages")
}

// -------- 0003: products_and_suppliers --------

// Link tables use CreateTable, not AutoMigrate: AutoMigrate also migrates the
// parent tables and SQLite rebuilds them, dropping their raw-SQL indexes.

type CreateProductsAndSuppliersTable struct{}

func (m *CreateProductsAndSuppliersTable) Up(db *gorm.DB) error {
	return createTable(db, &models.ProductSupplier{})
}

func (m *CreateProductsAndSuppliersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products_and_suppliers")
}

// -------- 0004: products_and_storages --------

type CreateProductsAndStoragesTable struct{}

func (m *CreateProductsAndStoragesTable) Up(db *gorm.DB) error {
	return createTable(db, &models.ProductStorage{})
}

func (m *CreateProductsAndStoragesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products_and_storages")
}

// -------- 0005: unique indexes --------

// RestoreUniqueIndexes recreates the four unique indexes on databases whose
// parent tables were rebuilt after 0000-0002 ran. On a fresh schema every
// index already exists and Up does nothing.
type RestoreUniqueIndexes struct{}

func (m *RestoreUniqueIndexes) Up(db *gorm.DB) error {
	for _, ix := range uniqueIndexes {
		if err := ix.create(db); err != nil {
			return err
		}
	}
	return nil
}

// Down leaves the indexes created by 0000-0002 to their own rollback.
func (m *RestoreUniqueIndexes) Down(db *gorm.DB) error {
	return nil
}
