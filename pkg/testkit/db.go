package testkit

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/warehouse/config"
	_ "github.com/shashiranjanraj/warehouse/database/migrations"
	"github.com/shashiranjanraj/warehouse/pkg/database"
	"github.com/shashiranjanraj/warehouse/pkg/migration"
)

var nameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_", "?", "_", "&", "_", "=", "_")

// NewDB opens an in-memory SQLite database private to t, with foreign keys on
// and every registered migration applied. It is closed when t finishes.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", nameReplacer.Replace(t.Name())),
	})
	if err != nil {
		t.Fatalf("testkit: open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if _, err := migration.New(db).Run(context.Background()); err != nil {
		t.Fatalf("testkit: migrate: %v", err)
	}
	return db
}
