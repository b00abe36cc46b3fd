package dto

import "time"

type ProductPayload struct {
	Id                string   `json:"id" validate:"required"`
	Sku               string   `json:"sku" validate:"required"`
	Title             string   `json:"title" validate:"required"`
	Description       string   `json:"description,omitempty"`
	Category          string   `json:"category,omitempty"`
	Subcategory       string   `json:"subcategory,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	Price             float64  `json:"price" validate:"gte=0"`
	Currency          string   `json:"currency,omitempty"`
	InventoryQuantity int      `json:"inventory_quantity" validate:"gte=0"`
	Available         bool     `json:"available"`
}

type SyncCatalogRequest struct {
	Source   string           `json:"source,omitempty" validate:"omitempty,oneof=upload database"`
	Products []ProductPayload `json:"products,omitempty" validate:"dive"`
}

type SyncCatalogResponse struct {
	SyncRunId    string `json:"sync_run_id"`
	Source       string `json:"source"`
	ProductCount int    `json:"product_count"`
	Status       string `json:"status"`
}

type CatalogStatsResponse struct {
	ProductCount  int        `json:"product_count"`
	CategoryCount int        `json:"category_count"`
	LastSyncedAt  *time.Time `json:"last_synced_at,omitempty"`
}
