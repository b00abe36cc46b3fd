package contract

import (
	"context"

	"ai-shopassist-be/pkg/store"
)

// SessionSnapshotRepository persists session state outside the process
// so a restart does not drop active conversations.
type SessionSnapshotRepository interface {
	Save(ctx context.Context, session *store.Session) error
	Load(ctx context.Context, sessionId string) (*store.Session, error)
	Delete(ctx context.Context, sessionId string) error
}
