package service

import (
	"context"
	"time"

	"ai-shopassist-be/internal/dto"
	"ai-shopassist-be/internal/entity"
	"ai-shopassist-be/internal/pkg/logger"
	"ai-shopassist-be/internal/repository/contract"
	"ai-shopassist-be/pkg/catalog"
	"ai-shopassist-be/pkg/events"
	"ai-shopassist-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogService interface {
	// Sync replaces the persisted catalog (when products are uploaded)
	// and rebuilds the in-memory index.
	Sync(ctx context.Context, req *dto.SyncCatalogRequest) (*dto.SyncCatalogResponse, error)

	// LoadIndex rebuilds the index from the database without touching
	// the persisted rows. Used at startup and by the sync worker.
	LoadIndex(ctx context.Context) (int, error)

	Stats(ctx context.Context) (*dto.CatalogStatsResponse, error)
}

type catalogService struct {
	productRepo contract.ProductRepository
	syncRunRepo contract.SyncRunRepository
	index       *catalog.Index
	publisher   IPublisherService
	logger      logger.ILogger
}

func NewCatalogService(
	productRepo contract.ProductRepository,
	syncRunRepo contract.SyncRunRepository,
	index *catalog.Index,
	publisher IPublisherService,
	log logger.ILogger,
) ICatalogService {
	return &catalogService{
		productRepo: productRepo,
		syncRunRepo: syncRunRepo,
		index:       index,
		publisher:   publisher,
		logger:      log,
	}
}

func (s *catalogService) Sync(ctx context.Context, req *dto.SyncCatalogRequest) (*dto.SyncCatalogResponse, error) {
	source := req.Source
	if source == "" {
		if len(req.Products) > 0 {
			source = "upload"
		} else {
			source = "database"
		}
	}
	if source == "upload" && len(req.Products) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "upload sync requires products")
	}

	run := &entity.SyncRun{
		Id:        uuid.New(),
		Source:    source,
		Status:    "running",
		StartedAt: time.Now(),
	}
	if err := s.syncRunRepo.Create(ctx, run); err != nil {
		return nil, err
	}

	count, err := s.sync(ctx, source, req.Products)

	now := time.Now()
	run.FinishedAt = &now
	run.ProductCount = count
	if err != nil {
		run.Status = "failed"
		run.Error = err.Error()
		if updateErr := s.syncRunRepo.Update(ctx, run); updateErr != nil {
			s.logger.Error("catalog", "Failed to record sync failure", map[string]interface{}{
				"error": updateErr.Error(),
			})
		}
		return nil, err
	}
	run.Status = "completed"
	if err := s.syncRunRepo.Update(ctx, run); err != nil {
		return nil, err
	}

	s.logger.Info("catalog", "Catalog synced", map[string]interface{}{
		"source":        source,
		"product_count": count,
	})

	if s.publisher != nil {
		if err := s.publisher.PublishEvent(ctx, events.NewCatalogSyncedEvent(count, source)); err != nil {
			s.logger.Warn("catalog", "Failed to publish sync event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return &dto.SyncCatalogResponse{
		SyncRunId:    run.Id.String(),
		Source:       source,
		ProductCount: count,
		Status:       run.Status,
	}, nil
}

func (s *catalogService) sync(ctx context.Context, source string, payload []dto.ProductPayload) (int, error) {
	if source == "upload" {
		rows := make([]*entity.Product, 0, len(payload))
		products := make([]store.Product, 0, len(payload))
		for _, p := range payload {
			sp := store.Product{
				ID:                p.Id,
				SKU:               p.Sku,
				Title:             p.Title,
				Description:       p.Description,
				Category:          p.Category,
				Subcategory:       p.Subcategory,
				Tags:              p.Tags,
				Price:             p.Price,
				Currency:          p.Currency,
				InventoryQuantity: p.InventoryQuantity,
				// Out-of-stock rows are never sellable regardless of the flag
				Available: p.Available && p.InventoryQuantity > 0,
			}
			row := entity.ProductFromStore(sp)
			rows = append(rows, &row)
			products = append(products, sp)
		}
		if err := s.productRepo.ReplaceAll(ctx, rows); err != nil {
			return 0, err
		}
		s.index.Rebuild(products)
		return len(products), nil
	}

	return s.LoadIndex(ctx)
}

func (s *catalogService) LoadIndex(ctx context.Context) (int, error) {
	rows, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	products := make([]store.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.ToStore())
	}
	s.index.Rebuild(products)
	return len(products), nil
}

func (s *catalogService) Stats(ctx context.Context) (*dto.CatalogStatsResponse, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.productRepo.CountCategories(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.CatalogStatsResponse{
		ProductCount:  int(count),
		CategoryCount: int(categories),
	}

	latest, err := s.syncRunRepo.FindLatestCompleted(ctx)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		res.LastSyncedAt = latest.FinishedAt
	}
	return res, nil
}
