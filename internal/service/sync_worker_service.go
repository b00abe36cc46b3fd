package service

import (
	"context"
	"time"

	"ai-shopassist-be/internal/pkg/logger"
	"ai-shopassist-be/pkg/events"
	natsbus "ai-shopassist-be/pkg/nats"
)

type ISyncWorkerService interface {
	// Run blocks until ctx is cancelled, requesting a catalog reload on
	// every interval tick and on every sync event arriving over NATS.
	Run(ctx context.Context)
}

type syncWorkerService struct {
	publisher IPublisherService
	bus       *natsbus.Subscriber // nil when NATS is disabled
	interval  time.Duration
	logger    logger.ILogger
}

func NewSyncWorkerService(
	publisher IPublisherService,
	bus *natsbus.Subscriber,
	interval time.Duration,
	log logger.ILogger,
) ISyncWorkerService {
	return &syncWorkerService{
		publisher: publisher,
		bus:       bus,
		interval:  interval,
		logger:    log,
	}
}

func (s *syncWorkerService) Run(ctx context.Context) {
	if s.bus != nil {
		// Forward external sync triggers onto the in-process topic so the
		// consumer service handles both sources the same way.
		err := s.bus.Subscribe(events.CatalogSyncRequested, "catalog-sync-worker", func(ctx context.Context, event events.Event) error {
			return s.publisher.Publish(ctx, events.CatalogSyncRequested, event.Payload())
		})
		if err != nil {
			s.logger.Warn("sync_worker", "NATS subscribe failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if s.interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			event := events.NewCatalogSyncRequestedEvent("scheduled")
			if err := s.publisher.Publish(ctx, event.EventType(), event.Payload()); err != nil {
				s.logger.Error("sync_worker", "Failed to request catalog sync", map[string]interface{}{
					"error": err.Error(),
				})
				continue
			}
			s.logger.Info("sync_worker", "Scheduled catalog sync requested", nil)
		}
	}
}
