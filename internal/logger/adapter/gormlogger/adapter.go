// Package gormlogger adapts gorm's logger interface onto the global
// zerolog logger so database traffic shares the process log stream.
package gormlogger

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlog "gorm.io/gorm/logger"
)

// slowQueryThreshold is the elapsed time after which a statement is logged
// as a slow query.
const slowQueryThreshold = 200 * time.Millisecond

// Adapter implements gorm's logger.Interface on top of zerolog.
type Adapter struct {
	level gormlog.LogLevel
}

// New returns an adapter logging at gorm's Warn level.
func New() *Adapter {
	return &Adapter{level: gormlog.Warn}
}

// LogMode implements gorm's logger.Interface. It returns a copy so shared
// adapters keep their level.
func (a *Adapter) LogMode(level gormlog.LogLevel) gormlog.Interface {
	na := *a
	na.level = level

	return &na
}

// Info implements gorm's logger.Interface.
func (a *Adapter) Info(_ context.Context, msg string, data ...interface{}) {
	if a.level >= gormlog.Info {
		log.Info().Msgf(msg, data...)
	}
}

// Warn implements gorm's logger.Interface.
func (a *Adapter) Warn(_ context.Context, msg string, data ...interface{}) {
	if a.level >= gormlog.Warn {
		log.Warn().Msgf(msg, data...)
	}
}

// Error implements gorm's logger.Interface.
func (a *Adapter) Error(_ context.Context, msg string, data ...interface{}) {
	if a.level >= gormlog.Error {
		log.Error().Msgf(msg, data...)
	}
}

// Trace logs completed statements: failures at error level, slow queries at
// warn and everything else at trace. Missing rows are part of normal
// control flow and are not reported as failures.
func (a *Adapter) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if a.level <= gormlog.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && a.level >= gormlog.Error:
		log.Error().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")

	case elapsed > slowQueryThreshold && a.level >= gormlog.Warn:
		log.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("slow query")

	case a.level >= gormlog.Info:
		log.Trace().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}
