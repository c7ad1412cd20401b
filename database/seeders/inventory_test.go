package seeders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/warehouse/app/models"
	"github.com/shashiranjanraj/warehouse/database/seeders"
	"github.com/shashiranjanraj/warehouse/pkg/testkit"
)

func rows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestSeedInventory(t *testing.T) {
	db := testkit.NewDB(t)
	ctx := context.Background()

	require.NoError(t, seeders.SeedInventory(ctx, db))
	assert.EqualValues(t, 3, rows(t, db, &models.Product{}))
	assert.EqualValues(t, 2, rows(t, db, &models.Supplier{}))
	assert.EqualValues(t, 2, rows(t, db, &models.Storage{}))
	assert.EqualValues(t, 3, rows(t, db, &models.ProductSupplier{}))

	require.NoError(t, seeders.SeedInventory(ctx, db))
	assert.EqualValues(t, 3, rows(t, db, &models.Product{}), "second run must not duplicate")
}

func TestSeedInventory_CancelledContext(t *testing.T) {
	db := testkit.NewDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := seeders.SeedInventory(ctx, db)
	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 0, rows(t, db, &models.Product{}))
}
