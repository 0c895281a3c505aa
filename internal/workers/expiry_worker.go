package workers

import (
	"context"
	"time"

	"korus_backend/internal/logger"
	"korus_backend/internal/repositories"

	"gorm.io/gorm"
)

const DefaultExpiryInterval = time.Hour

// ExpiryWorker периодически снимает с публикации просроченные вакансии
// и выключает просроченные токены сотрудников.
type ExpiryWorker struct {
	db        *gorm.DB
	jobRepo   repositories.JobRepository
	tokenRepo repositories.EmployeeTokenRepository
	interval  time.Duration
	now       func() time.Time
}

type ExpiryOption func(*ExpiryWorker)

// WithExpiryClock подменяет источник времени (для тестов)
func WithExpiryClock(now func() time.Time) ExpiryOption {
	return func(w *ExpiryWorker) {
		w.now = now
	}
}

func NewExpiryWorker(
	db *gorm.DB,
	jobRepo repositories.JobRepository,
	tokenRepo repositories.EmployeeTokenRepository,
	interval time.Duration,
	opts ...ExpiryOption,
) *ExpiryWorker {
	if interval <= 0 {
		interval = DefaultExpiryInterval
	}
	w := &ExpiryWorker{
		db:        db,
		jobRepo:   jobRepo,
		tokenRepo: tokenRepo,
		interval:  interval,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start запускает фоновый цикл; остановка через отмену ctx
func (w *ExpiryWorker) Start(ctx context.Context) {
	go w.loop(ctx)
}

func (w *ExpiryWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Expiry worker stopped")
			return
		case <-ticker.C:
			if _, _, err := w.RunOnce(ctx); err != nil {
				logger.Error("Expiry worker run failed", "error", err)
			}
		}
	}
}

// RunOnce выполняет один проход и возвращает число измененных вакансий и токенов
func (w *ExpiryWorker) RunOnce(ctx context.Context) (jobs int64, tokens int64, err error) {
	now := w.now().UTC()
	db := w.db.WithContext(ctx)

	jobs, err = w.jobRepo.DeactivateExpiredJobs(db, now)
	if err != nil {
		return 0, 0, err
	}
	tokens, err = w.tokenRepo.DeactivateExpiredTokens(db, now)
	if err != nil {
		return jobs, 0, err
	}

	if jobs > 0 || tokens > 0 {
		logger.Info("Expired records deactivated", "jobs", jobs, "employee_tokens", tokens)
	} else {
		logger.Debug("Nothing to expire")
	}
	return jobs, tokens, nil
}
