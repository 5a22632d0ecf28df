package store

import (
	"context"
	"time"

	"genpact-relay/internal/database"
	"genpact-relay/internal/metrics"
	"genpact-relay/internal/model"
	"genpact-relay/internal/worker"

	"go.uber.org/zap"
)

const recordTimeout = 5 * time.Second

// Recorder 非同步保存查詢紀錄，不得阻塞請求
type Recorder interface {
	Record(r model.QueryRecord)
}

// AsyncRecorder 透過 worker pool 寫入 query_history；佇列滿時丟棄並記錄警告
type AsyncRecorder struct {
	db      database.DB
	pool    worker.Pool
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewAsyncRecorder(db database.DB, pool worker.Pool, logger *zap.Logger, m *metrics.Metrics) *AsyncRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AsyncRecorder{db: db, pool: pool, logger: logger, metrics: m}
}

func (a *AsyncRecorder) Record(r model.QueryRecord) {
	ok := a.pool.TrySubmit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()
		if err := RecordQuery(ctx, a.db, &r); err != nil {
			a.logger.Warn("record query history failed", zap.String("kind", r.Kind), zap.Error(err))
		}
	})
	if !ok {
		a.metrics.HistoryDiscarded()
		a.logger.Warn("query history queue full, record dropped", zap.String("kind", r.Kind))
	}
}
