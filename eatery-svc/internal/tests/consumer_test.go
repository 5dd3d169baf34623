package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"eatery-blue/eatery-svc/internal/mocks"
	"eatery-blue/eatery-svc/internal/service"
	"eatery-blue/internal/domain"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestConsumer_ProcessMessage(t *testing.T) {
	tests := []struct {
		name           string
		inputMessage   domain.IngestionMessage
		setupMockCache func(*mocks.CacheInvalidator)
	}{
		{
			name:         "success",
			inputMessage: domain.IngestionMessage{Type: domain.MessageIngestionCompleted, RunID: "run-1"},
			setupMockCache: func(cache *mocks.CacheInvalidator) {
				cache.On("InvalidateAll", mock.Anything).Return(12, nil).Once()
			},
		},
		{
			name:         "invalidate_error",
			inputMessage: domain.IngestionMessage{Type: domain.MessageIngestionCompleted, RunID: "run-2"},
			setupMockCache: func(cache *mocks.CacheInvalidator) {
				cache.On("InvalidateAll", mock.Anything).Return(0, errors.New("redis error")).Once()
			},
		},
		{
			name:           "unknown_type",
			inputMessage:   domain.IngestionMessage{Type: "ingestion_started"},
			setupMockCache: func(cache *mocks.CacheInvalidator) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cache := mocks.NewCacheInvalidator(t)
			testCase.setupMockCache(cache)

			consumer := service.NewConsumer(nil, cache, zap.NewNop())
			consumer.ProcessMessage(context.Background(), testCase.inputMessage)
		})
	}
}

type fakeReader struct {
	messages chan kafka.Message
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m := <-r.messages:
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func TestConsumer_Start(t *testing.T) {
	cache := mocks.NewCacheInvalidator(t)
	done := make(chan struct{})
	cache.On("InvalidateAll", mock.Anything).Return(3, nil).Run(func(mock.Arguments) { close(done) }).Once()

	reader := &fakeReader{messages: make(chan kafka.Message, 2)}
	reader.messages <- kafka.Message{Value: []byte("not json")}
	payload, _ := json.Marshal(domain.IngestionMessage{Type: domain.MessageIngestionCompleted, RunID: "run-3"})
	reader.messages <- kafka.Message{Value: payload}

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		service.NewConsumer(reader, cache, zap.NewNop()).Start(ctx)
		close(stopped)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cache was not invalidated")
	}
	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
}
