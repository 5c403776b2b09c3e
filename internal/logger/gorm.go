package logger

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger implements gorm's logger.Interface on top of zap. It supports a
// slow query threshold and can suppress gorm.ErrRecordNotFound noise.
type GormLogger struct {
	log                       *zap.Logger
	LogLevel                  gormlogger.LogLevel
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
}

// NewGormLogger creates a GORM logger that writes through the given zap logger.
func NewGormLogger(log *zap.Logger, level gormlogger.LogLevel, slowThreshold time.Duration, ignoreRecordNotFoundError bool) *GormLogger {
	return &GormLogger{
		log:                       log,
		LogLevel:                  level,
		SlowThreshold:             slowThreshold,
		IgnoreRecordNotFoundError: ignoreRecordNotFoundError,
	}
}

// LogMode returns a copy of the logger with the given level.
func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	newLogger := *g
	newLogger.LogLevel = level
	return &newLogger
}

func (g *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if g.LogLevel < gormlogger.Info {
		return
	}
	g.log.Sugar().Infof(msg, data...)
}

func (g *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if g.LogLevel < gormlogger.Warn {
		return
	}
	g.log.Sugar().Warnf(msg, data...)
}

func (g *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if g.LogLevel < gormlogger.Error {
		return
	}
	g.log.Sugar().Errorf(msg, data...)
}

// Trace logs the executed SQL with timing and row counts.
func (g *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && (!g.IgnoreRecordNotFoundError || !errors.Is(err, gorm.ErrRecordNotFound)) {
		g.log.Error("GORM query failed",
			zap.Error(err),
			zap.Duration("elapsed", elapsed),
			zap.String("sql", sql),
			zap.Int64("rows", rows),
		)
		return
	}

	if g.SlowThreshold != 0 && elapsed > g.SlowThreshold {
		g.log.Warn("GORM slow query",
			zap.Duration("elapsed", elapsed),
			zap.String("sql", sql),
			zap.Int64("rows", rows),
		)
		return
	}

	if g.LogLevel >= gormlogger.Info {
		g.log.Info("GORM query",
			zap.Duration("elapsed", elapsed),
			zap.String("sql", sql),
			zap.Int64("rows", rows),
		)
	}
}
