package service

import (
	"context"
	"encoding/json"

	"ai-shopassist-be/internal/pkg/logger"
	"ai-shopassist-be/pkg/events"
	natsbus "ai-shopassist-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	// Publish sends raw payload bytes to an in-process topic.
	Publish(ctx context.Context, topic string, payload interface{}) error

	// PublishEvent fans the event out to the in-process topic named by
	// its type and, when a bus is configured, to NATS as well.
	PublishEvent(ctx context.Context, event events.Event) error
}

type publisherService struct {
	pubSub *gochannel.GoChannel
	bus    *natsbus.Publisher // nil when NATS is disabled
	logger logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, bus *natsbus.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub: pubSub,
		bus:    bus,
		logger: log,
	}
}

func (s *publisherService) Publish(ctx context.Context, topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)
	return s.pubSub.Publish(topic, msg)
}

func (s *publisherService) PublishEvent(ctx context.Context, event events.Event) error {
	if err := s.Publish(ctx, event.EventType(), event.Payload()); err != nil {
		return err
	}

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event); err != nil {
			// The in-process consumers already got the event; a bus
			// outage should not fail the request.
			s.logger.Warn("publisher", "NATS publish failed", map[string]interface{}{
				"event": event.EventType(),
				"error": err.Error(),
			})
		}
	}
	return nil
}
