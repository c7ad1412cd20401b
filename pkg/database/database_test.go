package database_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/warehouse/config"
	"github.com/shashiranjanraj/warehouse/pkg/database"
)

type widget struct {
	ID    uint    `gorm:"primaryKey"`
	Code  string  `gorm:"uniqueIndex:uq_widgets_code;not null"`
	Count int     `gorm:"check:count_non_negative,count >= 0"`
	Label *string `gorm:"size:64"`
}

type part struct {
	ID       uint   `gorm:"primaryKey"`
	WidgetID uint   `gorm:"not null"`
	Widget   widget `gorm:"constraint:OnDelete:CASCADE"`
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, db.AutoMigrate(&widget{}, &part{}))
	return db
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "warehouse.db?_foreign_keys=on", database.SQLiteDSN("warehouse.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", database.SQLiteDSN("file:x?mode=memory"))
	assert.Equal(t, "x.db?_fk=1", database.SQLiteDSN("x.db?_fk=1"))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := database.Connect(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestConnect_PingAndSingleConnection(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, database.Ping(context.Background(), db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestClassify_SQLite(t *testing.T) {
	db := openSQLite(t)

	require.NoError(t, db.Create(&widget{Code: "a", Count: 1}).Error)

	t.Run("unique", func(t *testing.T) {
		err := db.Create(&widget{Code: "a"}).Error
		v, ok := database.Classify(err)
		require.True(t, ok, "got %v", err)
		assert.Equal(t, database.KindUnique, v.Kind)
		assert.True(t, v.Names("code"))
		assert.ErrorIs(t, v, err)
	})

	t.Run("check", func(t *testing.T) {
		err := db.Create(&widget{Code: "b", Count: -1}).Error
		v, ok := database.Classify(err)
		require.True(t, ok, "got %v", err)
		assert.Equal(t, database.KindCheck, v.Kind)
		assert.Equal(t, "count_non_negative", v.Constraint)
	})

	t.Run("foreign key", func(t *testing.T) {
		err := db.Omit("Widget").Create(&part{WidgetID: 999}).Error
		v, ok := database.Classify(err)
		require.True(t, ok, "got %v", err)
		assert.Equal(t, database.KindForeignKey, v.Kind)
	})

	t.Run("cascade", func(t *testing.T) {
		w := widget{Code: "c"}
		require.NoError(t, db.Create(&w).Error)
		require.NoError(t, db.Omit("Widget").Create(&part{WidgetID: w.ID}).Error)
		require.NoError(t, db.Delete(&widget{}, w.ID).Error)

		var n int64
		require.NoError(t, db.Model(&part{}).Where("widget_id = ?", w.ID).Count(&n).Error)
		assert.Zero(t, n)
	})
}

func TestClassify_Postgres(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uq_suppliers_email",
		Detail:         "Key (email)=(a@b.c) already exists.",
	})
	v, ok := database.Classify(err)
	require.True(t, ok)
	assert.Equal(t, database.KindUnique, v.Kind)
	assert.True(t, v.Names("uq_suppliers_email"))
	assert.Equal(t, []string{"email"}, v.Columns)

	v, ok = database.Classify(&pgconn.PgError{Code: "23514", ConstraintName: "leftover_non_negative"})
	require.True(t, ok)
	assert.Equal(t, database.KindCheck, v.Kind)

	_, ok = database.Classify(&pgconn.PgError{Code: "42P01"})
	assert.False(t, ok)
}

func TestClassify_MySQL(t *testing.T) {
	v, ok := database.Classify(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '+7(900)000-00-00' for key 'suppliers.uq_suppliers_phone'"})
	require.True(t, ok)
	assert.Equal(t, database.KindUnique, v.Kind)
	assert.Equal(t, "uq_suppliers_phone", v.Constraint)

	v, ok = database.Classify(&mysql.MySQLError{Number: 3819, Message: "Check constraint 'leftover_non_negative' is violated."})
	require.True(t, ok)
	assert.Equal(t, database.KindCheck, v.Kind)
	assert.Equal(t, "leftover_non_negative", v.Constraint)

	v, ok = database.Classify(&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"})
	require.True(t, ok)
	assert.Equal(t, database.KindForeignKey, v.Kind)
}

func TestClassify_SQLServer(t *testing.T) {
	v, ok := database.Classify(mssql.Error{Number: 2601, Message: "Cannot insert duplicate key row in object 'dbo.storages' with unique index 'uq_storages_address'. The duplicate key value is (x)."})
	require.True(t, ok)
	assert.Equal(t, database.KindUnique, v.Kind)
	assert.Equal(t, "uq_storages_address", v.Constraint)

	v, ok = database.Classify(mssql.Error{Number: 547, Message: `The INSERT statement conflicted with the CHECK constraint "leftover_non_negative".`})
	require.True(t, ok)
	assert.Equal(t, database.KindCheck, v.Kind)
	assert.Equal(t, "leftover_non_negative", v.Constraint)
}

func TestClassify_Other(t *testing.T) {
	_, ok := database.Classify(nil)
	assert.False(t, ok)
	_, ok = database.Classify(errors.New("boom"))
	assert.False(t, ok)
	_, ok = database.Classify(gorm.ErrRecordNotFound)
	assert.False(t, ok)
}
