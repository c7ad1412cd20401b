package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shashiranjanraj/warehouse/pkg/logger"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slogLogger routes gorm's logging through the request-scoped slog logger.
// Statements are logged at debug, slow ones at warn and failures at error.
// Record-not-found is not a failure.
type slogLogger struct {
	level     gormlogger.LogLevel
	slowQuery time.Duration
}

// NewLogger returns a gorm logger that reports statements slower than
// slowQuery as warnings. A zero threshold disables slow-query reporting.
func NewLogger(slowQuery time.Duration) gormlogger.Interface {
	return &slogLogger{level: gormlogger.Info, slowQuery: slowQuery}
}

func (l *slogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		logger.WithCtx(ctx).Info(fmt.Sprintf(msg, args...))
	}
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		logger.WithCtx(ctx).Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		logger.WithCtx(ctx).Error(fmt.Sprintf(msg, args...))
	}
}

func (l *slogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := logger.WithCtx(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		level := slog.LevelError
		// constraint violations are expected outcomes the repositories translate
		if _, ok := Classify(err); ok {
			level = slog.LevelDebug
		}
		sql, rows := fc()
		log.Log(ctx, level, "db: statement failed", "sql", sql, "rows", rows, "elapsed", elapsed, "error", err)
	case l.slowQuery > 0 && elapsed > l.slowQuery && l.level >= gormlogger.Warn:
		sql, rows := fc()
		log.Warn("db: slow statement", "sql", sql, "rows", rows, "elapsed", elapsed, "threshold", l.slowQuery)
	case l.level >= gormlogger.Info:
		if !log.Enabled(ctx, slog.LevelDebug) {
			return
		}
		sql, rows := fc()
		log.Debug("db: statement", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
