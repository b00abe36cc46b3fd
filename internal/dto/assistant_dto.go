package dto

import (
	"time"
)

type ChatRequest struct {
	SessionId string `json:"session_id,omitempty"` // Empty starts a new session
	UserId    string `json:"user_id,omitempty"`
	Message   string `json:"message" validate:"required,min=1,max=2000"`
}

type ProductDTO struct {
	Id                string  `json:"id"`
	Sku               string  `json:"sku"`
	Title             string  `json:"title"`
	Category          string  `json:"category"`
	Price             float64 `json:"price"`
	Currency          string  `json:"currency"`
	InventoryQuantity int     `json:"inventory_quantity"`
	Available         bool    `json:"available"`
}

type BundleItemDTO struct {
	ItemType  string     `json:"item_type"`
	Product   ProductDTO `json:"product"`
	Quantity  int        `json:"quantity"`
	UnitPrice float64    `json:"unit_price"`
	LineTotal float64    `json:"line_total"`
}

type BundlePlanDTO struct {
	Items           []BundleItemDTO `json:"items"`
	UnmetItemTypes  []string        `json:"unmet_item_types,omitempty"`
	Budget          float64         `json:"budget"`
	TotalCost       float64         `json:"total_cost"`
	RemainingBudget float64         `json:"remaining_budget"`
	BudgetShortfall float64         `json:"budget_shortfall,omitempty"`
	Feasible        bool            `json:"feasible"`
}

type ChatResponse struct {
	SessionId            string         `json:"session_id"`
	Intent               string         `json:"intent"`
	Message              string         `json:"message"`
	Products             []ProductDTO   `json:"products,omitempty"`
	BundlePlan           *BundlePlanDTO `json:"bundle_plan,omitempty"`
	ClarificationNeeded  bool           `json:"clarification_needed"`
	ClarificationMessage string         `json:"clarification_message,omitempty"`
}

type ChatMessageDTO struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type GetSessionResponse struct {
	Id                 string            `json:"id"`
	UserId             string            `json:"user_id,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	LastActiveAt       time.Time         `json:"last_active_at"`
	History            []ChatMessageDTO  `json:"history"`
	AccumulatedFilters map[string]string `json:"accumulated_filters,omitempty"`
	LastShownProducts  []ProductDTO      `json:"last_shown_products,omitempty"`
}
