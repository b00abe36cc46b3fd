package entity

import (
	"time"

	"github.com/google/uuid"
)

type SyncRun struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Source       string
	ProductCount int
	Status       string // "completed" or "failed"
	Error        string
	StartedAt    time.Time
	FinishedAt   *time.Time
}
