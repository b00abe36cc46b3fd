package events

import "time"

const (
	CatalogSyncRequested = "CATALOG_SYNC_REQUESTED"
	CatalogSynced        = "CATALOG_SYNCED"
	ConversationTurn     = "CONVERSATION_TURN"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CATALOG_SYNCED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewCatalogSyncedEvent is emitted after the product index has been rebuilt.
func NewCatalogSyncedEvent(productCount int, source string) BaseEvent {
	return BaseEvent{
		Type: CatalogSynced,
		Data: map[string]interface{}{
			"product_count": productCount,
			"source":        source,
		},
		OccurredAt: time.Now(),
	}
}

// NewCatalogSyncRequestedEvent asks the sync worker to refresh the catalog.
func NewCatalogSyncRequestedEvent(reason string) BaseEvent {
	return BaseEvent{
		Type: CatalogSyncRequested,
		Data: map[string]interface{}{
			"reason": reason,
		},
		OccurredAt: time.Now(),
	}
}

// NewConversationTurnEvent records one handled user message for analytics.
func NewConversationTurnEvent(sessionId, intent string, productCount int) BaseEvent {
	return BaseEvent{
		Type: ConversationTurn,
		Data: map[string]interface{}{
			"session_id":    sessionId,
			"intent":        intent,
			"product_count": productCount,
		},
		OccurredAt: time.Now(),
	}
}
