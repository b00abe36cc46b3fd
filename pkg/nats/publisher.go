package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ai-shopassist-be/internal/pkg/logger"
	"ai-shopassist-be/pkg/events"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// One stream holds everything the assistant emits: catalog sync
// triggers, sync completions and conversation turns. Durable consumers
// pick their event type off the subject suffix.
const (
	streamName      = "SHOPASSIST_EVENTS"
	subjectPrefix   = "shopassist.events."
	subjectWildcard = "shopassist.events.>"

	eventRetention = 24 * time.Hour
)

// envelope is the wire form of an event on the bus. The subject already
// carries the type; it is repeated here so payloads are self-describing
// when inspected outside a consumer.
type envelope struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data"`
}

// Publisher pushes assistant events onto the JetStream bus so other
// deployments (and the sync worker) can react to them.
type Publisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger logger.ILogger
}

func NewPublisher(url string, log logger.ILogger) (*Publisher, error) {
	nc, js, err := connect(url)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Conversation-turn volume dwarfs sync events, so retention is
	// age-based rather than work-queue.
	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      streamName,
		Subjects:  []string{subjectWildcard},
		Storage:   jetstream.FileStorage,
		Retention: jetstream.LimitsPolicy,
		MaxAge:    eventRetention,
	})
	if err != nil {
		// The broker may not be ready yet; publishing will surface the
		// error per event instead.
		log.Warn("nats", "Could not ensure event stream", map[string]interface{}{
			"stream": streamName,
			"error":  err.Error(),
		})
	}

	return &Publisher{nc: nc, js: js, logger: log}, nil
}

// Publish writes the event to its typed subject, e.g. a CATALOG_SYNCED
// event lands on "shopassist.events.CATALOG_SYNCED".
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(envelope{
		Type:       event.EventType(),
		OccurredAt: event.Timestamp(),
		Data:       event.Payload(),
	})
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventType(), err)
	}

	subject := subjectPrefix + event.EventType()
	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", subject, err)
	}
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}

func connect(url string) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("open JetStream context: %w", err)
	}
	return nc, js, nil
}
