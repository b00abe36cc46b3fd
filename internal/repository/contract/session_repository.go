package contract

import (
	"ai-shopassist-be/pkg/store"
)

// SessionRepository owns active conversation state. Mutating methods are
// atomic per session id so concurrent turns on the same session cannot
// interleave partial updates. Get and GetOrCreate return private copies;
// all writes go through the mutating methods.
type SessionRepository interface {
	GetOrCreate(sessionId, userId string) *store.Session
	Get(sessionId string) (*store.Session, bool)
	Save(session *store.Session)
	Delete(sessionId string)

	AppendMessage(sessionId, role, text string)
	UpdateShownProducts(sessionId string, products []store.Product)
	MergeFilters(sessionId string, filters map[string]string)
	SetLastQuery(sessionId, query string)
	SetPendingClarification(sessionId string, pc *store.PendingClarification)
	ClearPendingClarification(sessionId string)

	AddCartLine(sessionId string, line store.CartLine)
	RemoveCartLine(sessionId, sku string)
}
