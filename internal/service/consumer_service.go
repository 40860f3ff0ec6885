package service

import (
	"context"
	"encoding/json"
	"time"

	"teaching-assistant-be/internal/entity"
	"teaching-assistant-be/internal/pkg/logger"
	"teaching-assistant-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IConsumerService drains the in-process event bus into the event_logs
// table so every turn, ingestion, and deletion leaves an audit row.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope eventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal event envelope", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages must not loop forever
		return
	}

	sessionId, err := uuid.Parse(envelope.SessionId)
	if err != nil {
		sessionId = uuid.Nil
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	record := &entity.EventLog{
		Id:        uuid.New(),
		EventType: envelope.EventType,
		SessionId: sessionId,
		Payload:   envelope.Payload,
		CreatedAt: time.Now(),
	}
	if err := uow.EventLogRepository().Create(ctx, record); err != nil {
		cs.logger.Error("consumer", "Failed to persist event log", map[string]interface{}{
			"event_type": envelope.EventType,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
