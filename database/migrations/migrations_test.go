package migrations

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/shashiranjanraj/warehouse/app/models"
	"github.com/shashiranjanraj/warehouse/config"
	"github.com/shashiranjanraj/warehouse/pkg/database"
	"github.com/shashiranjanraj/warehouse/pkg/migration"
)

// openDB is a private in-memory SQLite database with no migrations applied.
func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    "file:" + name + "?mode=memory&cache=shared&_foreign_keys=on",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func assertIndexes(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, ix := range uniqueIndexes {
		assert.True(t, db.Migrator().HasIndex(ix.table, ix.name), ix.name)
	}
}

func TestUniqueIndexesSurviveLinkTables(t *testing.T) {
	db := openDB(t)
	_, err := migration.New(db).Run(context.Background())
	require.NoError(t, err)

	assertIndexes(t, db)

	require.NoError(t, db.Exec(`INSERT INTO suppliers (supplier_name, phone) VALUES ('a', '+7(900)000-00-01')`).Error)
	err = db.Exec(`INSERT INTO suppliers (supplier_name, phone) VALUES ('b', '+7(900)000-00-01')`).Error
	require.Error(t, err, "duplicate phone accepted")
	v, ok := database.Classify(err)
	require.True(t, ok)
	assert.Equal(t, database.KindUnique, v.Kind)

	require.NoError(t, db.Exec(`INSERT INTO products (product_name) VALUES ('x'), ('y')`).Error, "many NULL descriptions")
}

func TestRestoreUniqueIndexes(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	// A schema migrated before the restore step, with its indexes lost.
	early := &migration.Registry{}
	early.Register("20260301000000_create_products_table", &CreateProductsTable{})
	early.Register("20260301000001_create_suppliers_table", &CreateSuppliersTable{})
	early.Register("20260301000002_create_storages_table", &CreateStoragesTable{})
	early.Register("20260301000003_create_products_and_suppliers_table", &CreateProductsAndSuppliersTable{})
	early.Register("20260301000004_create_products_and_storages_table", &CreateProductsAndStoragesTable{})
	_, err := migration.NewWithRegistry(db, early).Run(ctx)
	require.NoError(t, err)
	for _, ix := range uniqueIndexes {
		require.NoError(t, db.Migrator().DropIndex(ix.table, ix.name))
	}

	n, err := migration.New(db).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assertIndexes(t, db)
}

// InnoDB caps index keys at 3072 bytes; utf8mb4 takes up to 4 bytes a character.
func TestUniqueColumnsFitMySQLKeyLimit(t *testing.T) {
	cache := &sync.Map{}
	tables := map[string]interface{}{
		"products":  &models.Product{},
		"suppliers": &models.Supplier{},
		"storages":  &models.Storage{},
	}

	for _, ix := range uniqueIndexes {
		s, err := schema.Parse(tables[ix.table], cache, schema.NamingStrategy{})
		require.NoError(t, err, ix.table)

		field := s.LookUpField(ix.column)
		require.NotNil(t, field, ix.column)
		assert.Positive(t, field.Size, ix.name)
		assert.LessOrEqual(t, field.Size*4, 3072, ix.name)
	}
}
