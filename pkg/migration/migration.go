// Package migration runs and tracks schema migrations.
//
// Migrations register themselves from init() in database/migrations:
//
//	func init() {
//	    migration.Register("20260301000000_create_products_table", &CreateProductsTable{})
//	}
//
//	type CreateProductsTable struct{}
//	func (m *CreateProductsTable) Up(db *gorm.DB) error   { return db.AutoMigrate(&models.Product{}) }
//	func (m *CreateProductsTable) Down(db *gorm.DB) error { return db.Migrator().DropTable("products") }
//
// Run from CLI:
//
//	warehouse migrate             // run all pending
//	warehouse migrate:rollback    // rollback last batch
//	warehouse migrate:status      // list ran / pending
package migration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/warehouse/pkg/logger"
	"gorm.io/gorm"
)

// Migration is the interface every migration must implement.
type Migration interface {
	// Up applies the migration. It must be safe to run against a schema
	// that already contains its objects.
	Up(db *gorm.DB) error
	// Down reverses the migration.
	Down(db *gorm.DB) error
}

// record is the row stored in the tracking table.
type record struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (record) TableName() string { return "warehouse_migrations" }

// ------------------- Registry -------------------

type entry struct {
	name string
	m    Migration
}

// Registry is an ordered set of named migrations.
type Registry struct {
	mu      sync.Mutex
	entries []entry
}

// Default is the registry filled by Register.
var Default = &Registry{}

// Register adds a migration to the default registry.
// name should be timestamp-prefixed, e.g. "20260301000000_create_products_table".
func Register(name string, m Migration) { Default.Register(name, m) }

// Register adds a migration. Registering the same name twice panics.
func (r *Registry) Register(name string, m Migration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.name == name {
			panic(fmt.Sprintf("migration: %s registered twice", name))
		}
	}
	r.entries = append(r.entries, entry{name: name, m: m})
}

// sorted returns the registered migrations ordered by name; timestamps sort
// lexicographically.
func (r *Registry) sorted() []entry {
	r.mu.Lock()
	out := make([]entry, len(r.entries))
	copy(out, r.entries)
	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// ------------------- Runner -------------------

// Runner executes and tracks migrations.
type Runner struct {
	db       *gorm.DB
	registry *Registry
}

// New creates a Runner over the default registry.
func New(db *gorm.DB) *Runner {
	return NewWithRegistry(db, Default)
}

// NewWithRegistry creates a Runner over reg.
func NewWithRegistry(db *gorm.DB, reg *Registry) *Runner {
	return &Runner{db: db, registry: reg}
}

// EnsureTable creates the tracking table if it does not exist.
func (r *Runner) EnsureTable(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&record{})
}

// Pending returns the names of migrations that have not yet been run.
func (r *Runner) Pending(ctx context.Context) ([]string, error) {
	pending, err := r.pending(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(pending))
	for i, e := range pending {
		names[i] = e.name
	}
	return names, nil
}

func (r *Runner) pending(ctx context.Context) ([]entry, error) {
	var ran []record
	if err := r.db.WithContext(ctx).Find(&ran).Error; err != nil {
		return nil, err
	}

	done := make(map[string]bool, len(ran))
	for _, rec := range ran {
		done[rec.Name] = true
	}

	var pending []entry
	for _, e := range r.registry.sorted() {
		if !done[e.name] {
			pending = append(pending, e)
		}
	}
	return pending, nil
}

// Run executes all pending migrations as one batch and returns how many ran.
// Running it again with nothing pending is a no-op.
func (r *Runner) Run(ctx context.Context) (int, error) {
	if err := r.EnsureTable(ctx); err != nil {
		return 0, fmt.Errorf("migration: ensure table: %w", err)
	}

	pending, err := r.pending(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration: fetch pending: %w", err)
	}

	if len(pending) == 0 {
		logger.Info("migration: nothing to migrate")
		return 0, nil
	}

	batch, err := r.lastBatch(ctx)
	if err != nil {
		return 0, err
	}
	batch++

	db := r.db.WithContext(ctx)
	for _, e := range pending {
		logger.Info("migration: running", "name", e.name, "batch", batch)

		if err := e.m.Up(db); err != nil {
			return 0, fmt.Errorf("migration: %s up: %w", e.name, err)
		}
		if err := db.Create(&record{Name: e.name, Batch: batch}).Error; err != nil {
			return 0, fmt.Errorf("migration: record %s: %w", e.name, err)
		}
	}

	logger.Info("migration: done", "ran", len(pending), "batch", batch)
	return len(pending), nil
}

// Rollback reverses every migration of the most recent batch, newest first,
// and returns how many were rolled back.
func (r *Runner) Rollback(ctx context.Context) (int, error) {
	if err := r.EnsureTable(ctx); err != nil {
		return 0, fmt.Errorf("migration: ensure table: %w", err)
	}

	batch, err := r.lastBatch(ctx)
	if err != nil {
		return 0, err
	}
	if batch == 0 {
		logger.Info("migration: nothing to roll back")
		return 0, nil
	}

	db := r.db.WithContext(ctx)

	var records []record
	if err := db.Where("batch = ?", batch).Order("id desc").Find(&records).Error; err != nil {
		return 0, err
	}

	known := make(map[string]Migration)
	for _, e := range r.registry.sorted() {
		known[e.name] = e.m
	}

	for _, rec := range records {
		m, ok := known[rec.Name]
		if !ok {
			return 0, fmt.Errorf("migration: cannot roll back %s: not registered", rec.Name)
		}

		logger.Info("migration: rolling back", "name", rec.Name, "batch", batch)
		if err := m.Down(db); err != nil {
			return 0, fmt.Errorf("migration: %s down: %w", rec.Name, err)
		}
		if err := db.Delete(&rec).Error; err != nil {
			return 0, err
		}
	}
	return len(records), nil
}

// Status describes one registered migration.
type Status struct {
	Name  string
	Ran   bool
	Batch int
}

// Statuses lists every registered migration and whether it has run.
func (r *Runner) Statuses(ctx context.Context) ([]Status, error) {
	if err := r.EnsureTable(ctx); err != nil {
		return nil, err
	}

	var ran []record
	if err := r.db.WithContext(ctx).Find(&ran).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]record, len(ran))
	for _, rec := range ran {
		byName[rec.Name] = rec
	}

	var out []Status
	for _, e := range r.registry.sorted() {
		rec, ok := byName[e.name]
		out = append(out, Status{Name: e.name, Ran: ok, Batch: rec.Batch})
	}
	return out, nil
}

// Status writes a table of all migrations to w.
func (r *Runner) Status(ctx context.Context, w io.Writer) error {
	statuses, err := r.Statuses(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-60s  %-8s  %s\n", "Migration", "Status", "Batch")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, s := range statuses {
		if s.Ran {
			fmt.Fprintf(w, "%-60s  %-8s  %d\n", s.Name, "Ran", s.Batch)
		} else {
			fmt.Fprintf(w, "%-60s  %-8s  -\n", s.Name, "Pending")
		}
	}
	return nil
}

func (r *Runner) lastBatch(ctx context.Context) (int, error) {
	var last struct{ Max int }
	err := r.db.WithContext(ctx).Model(&record{}).Select("COALESCE(MAX(batch), 0) AS max").Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("migration: last batch: %w", err)
	}
	return last.Max, nil
}
