package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ai-shopassist-be/internal/repository/contract"
	"ai-shopassist-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "assistant:session:"

type SessionSnapshotRepositoryImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionSnapshotRepository(client *redis.Client, ttl time.Duration) contract.SessionSnapshotRepository {
	return &SessionSnapshotRepositoryImpl{client: client, ttl: ttl}
}

func (r *SessionSnapshotRepositoryImpl) Save(ctx context.Context, session *store.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.ID, data, r.ttl).Err()
}

func (r *SessionSnapshotRepositoryImpl) Load(ctx context.Context, sessionId string) (*store.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+sessionId).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var session store.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionSnapshotRepositoryImpl) Delete(ctx context.Context, sessionId string) error {
	return r.client.Del(ctx, sessionKeyPrefix+sessionId).Err()
}
