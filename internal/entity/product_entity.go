package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ai-shopassist-be/pkg/store"
)

type Product struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalId        string    `gorm:"index"`
	Sku               string    `gorm:"uniqueIndex"`
	Title             string
	Description       string
	Category          string `gorm:"index"`
	Subcategory       string
	Tags              datatypes.JSON `gorm:"type:jsonb"`
	Price             float64
	Currency          string
	InventoryQuantity int
	Available         bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// ToStore converts the persisted row into the in-memory catalog record.
func (p *Product) ToStore() store.Product {
	tags := make([]string, 0)
	if len(p.Tags) > 0 {
		_ = json.Unmarshal(p.Tags, &tags)
	}
	return store.Product{
		ID:                p.ExternalId,
		SKU:               p.Sku,
		Title:             p.Title,
		Description:       p.Description,
		Category:          p.Category,
		Subcategory:       p.Subcategory,
		Tags:              tags,
		Price:             p.Price,
		Currency:          p.Currency,
		InventoryQuantity: p.InventoryQuantity,
		Available:         p.Available,
	}
}

// ProductFromStore maps a catalog record onto a row for upsert.
func ProductFromStore(sp store.Product) Product {
	tagsJSON, _ := json.Marshal(sp.Tags)
	return Product{
		Id:                uuid.New(),
		ExternalId:        sp.ID,
		Sku:               sp.SKU,
		Title:             sp.Title,
		Description:       sp.Description,
		Category:          sp.Category,
		Subcategory:       sp.Subcategory,
		Tags:              datatypes.JSON(tagsJSON),
		Price:             sp.Price,
		Currency:          sp.Currency,
		InventoryQuantity: sp.InventoryQuantity,
		Available:         sp.Available,
	}
}
