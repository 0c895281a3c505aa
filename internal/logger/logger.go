package logger

import (
	"io"
	"log/slog"
	"os"
	"time"
)

var log *slog.Logger

// Init инициализирует глобальный логгер
// env: "development" или "production" (любое другое значение = JSON)
func Init(env string) {
	InitWithWriter(env, os.Stdout)
}

// InitWithWriter позволяет перенаправить вывод (используется в тестах)
func InitWithWriter(env string, w io.Writer) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	switch env {
	case "development":
		// Development: читаемый текстовый формат
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(w, opts)
	case "test":
		opts.Level = slog.LevelWarn
		opts.AddSource = false
		handler = slog.NewTextHandler(w, opts)
	default:
		// Production: JSON формат для парсинга
		handler = slog.NewJSONHandler(w, opts)
	}

	log = slog.New(handler)
	slog.SetDefault(log)
}

// GetLogger возвращает глобальный логгер
func GetLogger() *slog.Logger {
	if log == nil {
		// Fallback если Init не вызван
		Init("development")
	}
	return log
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal логирует fatal ошибку и завершает программу
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// DBLog логирует SQL запрос; медленные и упавшие запросы идут выше уровня debug
func DBLog(query string, rows int64, duration time.Duration, slow bool, err error) {
	fields := []any{
		"query", query,
		"rows", rows,
		"duration_ms", duration.Milliseconds(),
	}

	switch {
	case err != nil:
		fields = append(fields, "error", err.Error())
		GetLogger().Error("database operation failed", fields...)
	case slow:
		GetLogger().Warn("slow database operation", fields...)
	default:
		GetLogger().Debug("database operation", fields...)
	}
}
