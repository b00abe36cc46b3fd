package service

import (
	"context"
	"encoding/json"

	"ai-shopassist-be/internal/pkg/logger"
	"ai-shopassist-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the in-process worker behind the catalog topics.
// A sync request triggers an index reload; a synced event is recorded
// for operators.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	catalogService ICatalogService
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	catalogService ICatalogService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		catalogService: catalogService,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	requests, err := cs.pubSub.Subscribe(ctx, events.CatalogSyncRequested)
	if err != nil {
		return err
	}
	synced, err := cs.pubSub.Subscribe(ctx, events.CatalogSynced)
	if err != nil {
		return err
	}

	go func() {
		for msg := range requests {
			cs.processSyncRequest(ctx, msg)
		}
	}()
	go func() {
		for msg := range synced {
			cs.processSynced(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processSyncRequest(ctx context.Context, msg *message.Message) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal sync request", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Poison message, do not retry
		return
	}

	count, err := cs.catalogService.LoadIndex(ctx)
	if err != nil {
		cs.logger.Error("consumer", "Index reload failed", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Nack() // Retriable
		return
	}

	cs.logger.Info("consumer", "Index reloaded", map[string]interface{}{
		"product_count": count,
		"reason":        payload["reason"],
	})
	msg.Ack()
}

func (cs *consumerService) processSynced(msg *message.Message) {
	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal synced event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("consumer", "Catalog synced", map[string]interface{}{
		"product_count": payload["product_count"],
		"source":        payload["source"],
	})
	msg.Ack()
}
