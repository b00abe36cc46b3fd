package implementation

import (
	"context"
	"errors"

	"ai-shopassist-be/internal/entity"
	"ai-shopassist-be/internal/repository/contract"

	"gorm.io/gorm"
)

type SyncRunRepositoryImpl struct {
	db *gorm.DB
}

func NewSyncRunRepository(db *gorm.DB) contract.SyncRunRepository {
	return &SyncRunRepositoryImpl{db: db}
}

func (r *SyncRunRepositoryImpl) Create(ctx context.Context, run *entity.SyncRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *SyncRunRepositoryImpl) Update(ctx context.Context, run *entity.SyncRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

func (r *SyncRunRepositoryImpl) FindLatestCompleted(ctx context.Context) (*entity.SyncRun, error) {
	var run entity.SyncRun
	err := r.db.WithContext(ctx).
		Where("status = ?", "completed").
		Order("started_at desc").
		First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}
