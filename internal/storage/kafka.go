package storage

import (
	"context"
	"encoding/json"

	"eatery-blue/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishIngestion(ctx context.Context, msg domain.IngestionMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.RunID),
		Value: payload,
	})
}
