package contract

import (
	"context"

	"ai-shopassist-be/internal/entity"
)

type SyncRunRepository interface {
	Create(ctx context.Context, run *entity.SyncRun) error
	Update(ctx context.Context, run *entity.SyncRun) error
	FindLatestCompleted(ctx context.Context) (*entity.SyncRun, error)
}
