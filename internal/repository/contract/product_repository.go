package contract

import (
	"context"

	"ai-shopassist-be/internal/entity"
)

type ProductRepository interface {
	// ReplaceAll swaps the persisted catalog for the given rows in one
	// transaction so readers never observe a partial sync.
	ReplaceAll(ctx context.Context, products []*entity.Product) error
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindBySku(ctx context.Context, sku string) (*entity.Product, error)
	Count(ctx context.Context) (int64, error)
	CountCategories(ctx context.Context) (int64, error)
}
