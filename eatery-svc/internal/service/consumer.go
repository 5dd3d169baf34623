package service

import (
	"context"
	"encoding/json"

	"eatery-blue/internal/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Consumer drops the page cache whenever an ingestion pass commits.
type Consumer struct {
	Reader MessageReader
	Cache  CacheInvalidator
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, cache CacheInvalidator, logger *zap.Logger) *Consumer {
	return &Consumer{
		Reader: reader,
		Cache:  cache,
		Logger: logger,
	}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting ingestion consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("ingestion consumer stopped")
				return
			}
			c.Logger.Warn("failed to read message", zap.Error(err))
			continue
		}

		var msg domain.IngestionMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.Logger.Warn("failed to decode message", zap.Error(err))
			continue
		}
		c.ProcessMessage(ctx, msg)
	}
}

func (c *Consumer) ProcessMessage(ctx context.Context, msg domain.IngestionMessage) {
	if msg.Type != domain.MessageIngestionCompleted {
		return
	}

	removed, err := c.Cache.InvalidateAll(ctx)
	if err != nil {
		c.Logger.Error("failed to invalidate page cache",
			zap.String("run_id", msg.RunID),
			zap.Error(err))
		return
	}
	c.Logger.Info("page cache invalidated",
		zap.String("run_id", msg.RunID),
		zap.Int("pages", removed))
}
