package service

import (
	"context"
	"encoding/json"

	"teaching-assistant-be/internal/pkg/logger"
	"teaching-assistant-be/pkg/events"
	natsbus "teaching-assistant-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IPublisherService fans assistant events out to the in-process bus
// (which feeds the event log consumer) and, when configured, the NATS
// stream. Both legs are best effort.
type IPublisherService interface {
	PublishEvent(ctx context.Context, event events.Event)
}

// eventEnvelope is the wire form used on the in-process bus.
type eventEnvelope struct {
	EventType string                 `json:"event_type"`
	SessionId string                 `json:"session_id"`
	Payload   map[string]interface{} `json:"payload"`
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	nats      *natsbus.Publisher // nil when NATS is not configured
	logger    logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string, nats *natsbus.Publisher, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
		nats:      nats,
		logger:    log,
	}
}

func (ps *publisherService) PublishEvent(ctx context.Context, event events.Event) {
	envelope := eventEnvelope{
		EventType: event.EventType(),
		SessionId: event.SessionId(),
		Payload:   event.Payload(),
	}
	data, err := json.Marshal(envelope)
	if err != nil {
		ps.logger.Error("publisher", "Failed to marshal event envelope", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := ps.pubSub.Publish(ps.topicName, msg); err != nil {
		ps.logger.Error("publisher", "Failed to publish event to local bus", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
	}

	if ps.nats != nil {
		if err := ps.nats.Publish(ctx, event); err != nil {
			ps.logger.Warn("publisher", "Failed to publish event to NATS", map[string]interface{}{
				"event_type": event.EventType(),
				"error":      err.Error(),
			})
		}
	}
}
