package database

import (
	"time"

	"github.com/shashiranjanraj/warehouse/pkg/metrics"
	"gorm.io/gorm"
)

const startedAtKey = "warehouse:started_at"

// MetricsPlugin times every statement gorm executes and feeds
// metrics.DBQueryDuration, labelled by callback chain.
type MetricsPlugin struct{}

func (MetricsPlugin) Name() string { return "warehouse:metrics" }

func (p MetricsPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()

	chains := []struct {
		op     string
		before func(name string, fn func(*gorm.DB)) error
		after  func(name string, fn func(*gorm.DB)) error
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}

	for _, c := range chains {
		if err := c.before("warehouse:before_"+c.op, startTimer); err != nil {
			return err
		}
		if err := c.after("warehouse:after_"+c.op, observe(c.op)); err != nil {
			return err
		}
	}
	return nil
}

func startTimer(db *gorm.DB) {
	db.InstanceSet(startedAtKey, time.Now())
}

func observe(op string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		v, ok := db.InstanceGet(startedAtKey)
		if !ok {
			return
		}
		if start, ok := v.(time.Time); ok {
			metrics.ObserveDBQuery(op, start)
		}
	}
}
