package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"korus_backend/internal/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger пробрасывает логи GORM в slog через internal/logger
type GormLogger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		level:         gormlogger.Warn,
		slowThreshold: slowThreshold,
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		logger.CtxInfo(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		logger.CtxWarn(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		logger.CtxError(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	// "не найдено" - штатный исход, его обрабатывают репозитории
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		err = nil
	}
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	switch {
	case err != nil && l.level >= gormlogger.Error,
		slow && l.level >= gormlogger.Warn,
		l.level >= gormlogger.Info:
		query, rows := fc()
		logger.DBLog(query, rows, elapsed, slow, err)
	}
}
