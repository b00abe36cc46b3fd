package store

import "time"

// Message is a single conversation turn kept in session history.
type Message struct {
	Role      string    `json:"role"` // "user" | "assistant"
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PendingClarification tracks a question asked back to the user when the
// interpreted intent was too weak to search directly.
type PendingClarification struct {
	VagueType       string            `json:"vague_type"`
	PartialEntities map[string]string `json:"partial_entities"`
	Question        string            `json:"question"`
}

// CartLine is one product the user asked to set aside during the
// conversation.
type CartLine struct {
	SKU       string  `json:"sku"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Session is the active conversation state in memory. LastShownProducts
// keeps insertion order, which is the display order used for ordinal
// reference resolution ("option 2" -> index 1).
type Session struct {
	ID                   string                `json:"id"`
	UserID               string                `json:"user_id"`
	CreatedAt            time.Time             `json:"created_at"`
	LastActiveAt         time.Time             `json:"last_active_at"`
	MessageHistory       []Message             `json:"message_history"`
	LastShownProducts    []Product             `json:"last_shown_products"`
	PendingClarification *PendingClarification `json:"pending_clarification,omitempty"`
	AccumulatedFilters   map[string]string     `json:"accumulated_filters"`
	LastQuery            string                `json:"last_query"`
	Cart                 []CartLine            `json:"cart,omitempty"`
}

// CartTotal sums the cart lines.
func (s *Session) CartTotal() float64 {
	total := 0.0
	for _, line := range s.Cart {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
