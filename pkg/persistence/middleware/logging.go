package middleware

import (
	"context"
	"log/slog"

	"github.com/aretw0/strobe/pkg/domain"
	"github.com/aretw0/strobe/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.HistoryStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store operation with its outcome.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.HistoryStore) ports.HistoryStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) Append(ctx context.Context, record domain.PerformanceRecord) error {
	err := m.next.Append(ctx, record)
	if err != nil {
		m.logger.Error("history append failed",
			"family", record.Family,
			"algorithm", record.Algorithm,
			"err", err,
		)
		return err
	}
	m.logger.Debug("history record appended",
		"family", record.Family,
		"algorithm", record.Algorithm,
		"comparisons", record.Comparisons,
		"mutations", record.Mutations,
	)
	return nil
}

func (m *loggingMiddleware) List(ctx context.Context) ([]domain.PerformanceRecord, error) {
	records, err := m.next.List(ctx)
	if err != nil {
		m.logger.Error("history list failed", "err", err)
		return nil, err
	}
	m.logger.Debug("history listed", "records", len(records))
	return records, nil
}

func (m *loggingMiddleware) Clear(ctx context.Context) error {
	if err := m.next.Clear(ctx); err != nil {
		m.logger.Error("history clear failed", "err", err)
		return err
	}
	m.logger.Debug("history cleared")
	return nil
}
