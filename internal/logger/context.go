package logger

import (
	"context"
	"log/slog"
	"strconv"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	companyIDKey contextKey = "company_id"
)

// WithRequestID добавляет request ID в context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithCompanyID добавляет ID аутентифицированной компании в context
func WithCompanyID(ctx context.Context, companyID uint) context.Context {
	return context.WithValue(ctx, companyIDKey, companyID)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func GetCompanyID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(companyIDKey).(uint)
	return id, ok
}

// FromContext создает логгер с полями из context (request_id, company_id)
func FromContext(ctx context.Context) *slog.Logger {
	l := GetLogger()

	var fields []any
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if companyID, ok := GetCompanyID(ctx); ok {
		fields = append(fields, "company_id", strconv.FormatUint(uint64(companyID), 10))
	}

	if len(fields) > 0 {
		l = l.With(fields...)
	}
	return l
}

func CtxInfo(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func CtxWarn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func CtxError(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}

// CtxWithError логирует error с error объектом
func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	fields := append([]any{"error", err.Error()}, args...)
	FromContext(ctx).Error(msg, fields...)
}
