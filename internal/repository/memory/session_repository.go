package memory

import (
	"hash/fnv"
	"sync"
	"time"

	"ai-shopassist-be/internal/repository/contract"
	"ai-shopassist-be/pkg/store"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	lockStripes       = 32
	maxHistoryEntries = 50
)

type SessionRepository struct {
	cache *cache.Cache
	locks [lockStripes]sync.Mutex
}

// NewSessionRepository builds the in-memory session store. Sessions
// expire after ttl of inactivity; every mutation refreshes the clock.
func NewSessionRepository(ttl time.Duration) contract.SessionRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	c := cache.New(ttl, 10*time.Minute)
	return &SessionRepository{cache: c}
}

func (r *SessionRepository) lockFor(sessionId string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionId))
	return &r.locks[h.Sum32()%lockStripes]
}

func (r *SessionRepository) GetOrCreate(sessionId, userId string) *store.Session {
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	mu := r.lockFor(sessionId)
	mu.Lock()
	defer mu.Unlock()

	if x, found := r.cache.Get(sessionId); found {
		return clone(x.(*store.Session))
	}

	now := time.Now()
	session := &store.Session{
		ID:                 sessionId,
		UserID:             userId,
		CreatedAt:          now,
		LastActiveAt:       now,
		MessageHistory:     make([]store.Message, 0),
		LastShownProducts:  make([]store.Product, 0),
		AccumulatedFilters: make(map[string]string),
	}
	r.cache.Set(sessionId, session, cache.DefaultExpiration)
	return clone(session)
}

func (r *SessionRepository) Get(sessionId string) (*store.Session, bool) {
	mu := r.lockFor(sessionId)
	mu.Lock()
	defer mu.Unlock()

	if x, found := r.cache.Get(sessionId); found {
		return clone(x.(*store.Session)), true
	}
	return nil, false
}

func (r *SessionRepository) Save(session *store.Session) {
	mu := r.lockFor(session.ID)
	mu.Lock()
	defer mu.Unlock()

	stored := clone(session)
	stored.LastActiveAt = time.Now()
	r.cache.Set(stored.ID, stored, cache.DefaultExpiration)
}

func (r *SessionRepository) Delete(sessionId string) {
	mu := r.lockFor(sessionId)
	mu.Lock()
	defer mu.Unlock()

	r.cache.Delete(sessionId)
}

func (r *SessionRepository) AppendMessage(sessionId, role, text string) {
	r.mutate(sessionId, func(s *store.Session) {
		s.MessageHistory = append(s.MessageHistory, store.Message{
			Role:      role,
			Text:      text,
			CreatedAt: time.Now(),
		})
		if len(s.MessageHistory) > maxHistoryEntries {
			s.MessageHistory = s.MessageHistory[len(s.MessageHistory)-maxHistoryEntries:]
		}
	})
}

func (r *SessionRepository) UpdateShownProducts(sessionId string, products []store.Product) {
	r.mutate(sessionId, func(s *store.Session) {
		s.LastShownProducts = append([]store.Product(nil), products...)
	})
}

func (r *SessionRepository) MergeFilters(sessionId string, filters map[string]string) {
	r.mutate(sessionId, func(s *store.Session) {
		if s.AccumulatedFilters == nil {
			s.AccumulatedFilters = make(map[string]string)
		}
		for k, v := range filters {
			s.AccumulatedFilters[k] = v
		}
	})
}

func (r *SessionRepository) SetLastQuery(sessionId, query string) {
	r.mutate(sessionId, func(s *store.Session) {
		s.LastQuery = query
	})
}

func (r *SessionRepository) SetPendingClarification(sessionId string, pc *store.PendingClarification) {
	r.mutate(sessionId, func(s *store.Session) {
		s.PendingClarification = pc
	})
}

func (r *SessionRepository) ClearPendingClarification(sessionId string) {
	r.mutate(sessionId, func(s *store.Session) {
		s.PendingClarification = nil
	})
}

func (r *SessionRepository) AddCartLine(sessionId string, line store.CartLine) {
	r.mutate(sessionId, func(s *store.Session) {
		for i := range s.Cart {
			if s.Cart[i].SKU == line.SKU {
				s.Cart[i].Quantity += line.Quantity
				return
			}
		}
		s.Cart = append(s.Cart, line)
	})
}

func (r *SessionRepository) RemoveCartLine(sessionId, sku string) {
	r.mutate(sessionId, func(s *store.Session) {
		kept := s.Cart[:0]
		for _, line := range s.Cart {
			if line.SKU != sku {
				kept = append(kept, line)
			}
		}
		s.Cart = kept
	})
}

// clone deep-copies a session so readers never share mutable state with
// the cached copy. Products are immutable between syncs, so their slice
// elements are copied by value only.
func clone(s *store.Session) *store.Session {
	out := *s
	out.MessageHistory = append([]store.Message(nil), s.MessageHistory...)
	out.LastShownProducts = append([]store.Product(nil), s.LastShownProducts...)
	out.Cart = append([]store.CartLine(nil), s.Cart...)
	if s.AccumulatedFilters != nil {
		out.AccumulatedFilters = make(map[string]string, len(s.AccumulatedFilters))
		for k, v := range s.AccumulatedFilters {
			out.AccumulatedFilters[k] = v
		}
	}
	if s.PendingClarification != nil {
		pc := *s.PendingClarification
		if pc.PartialEntities != nil {
			pc.PartialEntities = make(map[string]string, len(s.PendingClarification.PartialEntities))
			for k, v := range s.PendingClarification.PartialEntities {
				pc.PartialEntities[k] = v
			}
		}
		out.PendingClarification = &pc
	}
	return &out
}

// mutate runs fn under the session's stripe lock and refreshes the TTL.
// A missing session is a no-op.
func (r *SessionRepository) mutate(sessionId string, fn func(*store.Session)) {
	mu := r.lockFor(sessionId)
	mu.Lock()
	defer mu.Unlock()

	x, found := r.cache.Get(sessionId)
	if !found {
		return
	}
	session := x.(*store.Session)
	fn(session)
	session.LastActiveAt = time.Now()
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}
