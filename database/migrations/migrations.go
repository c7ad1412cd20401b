// Package migrations holds the schema migrations of the warehouse database.
// Each file registers its migrations from init(); importing this package for
// side effects makes them visible to the runner.
package migrations

import (
	"fmt"

	"gorm.io/gorm"
)

// uniqueIndex describes a named unique index over one column.
type uniqueIndex struct {
	name     string
	table    string
	column   string
	nullable bool
}

// create adds the index unless it already exists. Nullable columns get a
// filtered index so any number of NULLs is allowed while present values stay
// distinct; MySQL unique indexes already behave that way and have no filter
// syntax.
func (ix uniqueIndex) create(db *gorm.DB) error {
	if db.Migrator().HasIndex(ix.table, ix.name) {
		return nil
	}
	stmt := fmt.Sprintf("CREATE UNIQUE INDEX %s ON %s (%s)", ix.name, ix.table, ix.column)
	if ix.nullable && db.Dialector.Name() != "mysql" {
		stmt += fmt.Sprintf(" WHERE %s IS NOT NULL", ix.column)
	}
	return db.Exec(stmt).Error
}

// uniqueIndexes lists every named unique index of the schema.
var uniqueIndexes = []uniqueIndex{
	productDescriptionIndex,
	supplierEmailIndex,
	supplierPhoneIndex,
	storageAddressIndex,
}

// createTable creates the table for model alone when it is missing.
// Unlike AutoMigrate it never touches the tables model references.
func createTable(db *gorm.DB, model interface{}) error {
	if db.Migrator().HasTable(model) {
		return nil
	}
	return db.Migrator().CreateTable(model)
}
