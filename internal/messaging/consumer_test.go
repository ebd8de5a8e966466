package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/serroba/linx/internal/events"
	"github.com/serroba/linx/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// streamStub hands out a single channel the test feeds messages into.
type streamStub struct {
	deliveries chan *message.Message
	failWith   error

	mu     sync.Mutex
	topics []string
	closed bool
}

func newStreamStub() *streamStub {
	return &streamStub{deliveries: make(chan *message.Message, 10)}
}

func (s *streamStub) Subscribe(_ context.Context, topic string) (<-chan *message.Message, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}

	s.mu.Lock()
	s.topics = append(s.topics, topic)
	s.mu.Unlock()

	return s.deliveries, nil
}

func (s *streamStub) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.deliveries)
	}

	return nil
}

func (s *streamStub) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func linkCreatedMessage(t *testing.T, event events.LinkCreatedEvent) *message.Message {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	return message.NewMessage(uuid.NewString(), payload)
}

// awaitSettled reports true for ack, false for nack.
func awaitSettled(t *testing.T, msg *message.Message) bool {
	t.Helper()

	select {
	case <-msg.Acked():
		return true
	case <-msg.Nacked():
		return false
	case <-time.After(time.Second):
		t.Fatalf("message %s was never acked or nacked", msg.UUID)

		return false
	}
}

func TestConsumerFeedsAuditLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	audit := events.NewAuditLog(zap.New(core))
	stream := newStreamStub()

	consumer := messaging.NewConsumer(stream, events.TopicLinkCreated, audit.LinkCreated, zap.NewNop())
	require.NoError(t, consumer.Start(context.Background()))

	t.Cleanup(func() { _ = consumer.Shutdown() })

	assert.Equal(t, events.TopicLinkCreated, consumer.Topic())
	assert.Equal(t, []string{events.TopicLinkCreated}, stream.topics)

	msg := linkCreatedMessage(t, events.LinkCreatedEvent{
		Code:      "ex",
		URL:       "https://example.com",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		RequestID: "req-1",
	})
	stream.deliveries <- msg

	require.True(t, awaitSettled(t, msg))

	entries := logs.FilterMessage("link created").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ex", entries[0].ContextMap()["code"])
	assert.Equal(t, "req-1", entries[0].ContextMap()["requestId"])
}

func TestConsumerSettlesMessages(t *testing.T) {
	tests := []struct {
		name        string
		payload     func(t *testing.T) *message.Message
		handlerErr  error
		wantAck     bool
		wantHandled bool
	}{
		{
			name: "event handled",
			payload: func(t *testing.T) *message.Message {
				return linkCreatedMessage(t, events.LinkCreatedEvent{Code: "abc123", URL: "https://a.example", Generated: true})
			},
			wantAck:     true,
			wantHandled: true,
		},
		{
			name: "handler failure is redelivered",
			payload: func(t *testing.T) *message.Message {
				return linkCreatedMessage(t, events.LinkCreatedEvent{Code: "abc123", URL: "https://a.example"})
			},
			handlerErr:  errors.New("audit sink unavailable"),
			wantAck:     false,
			wantHandled: true,
		},
		{
			name: "undecodable payload is dropped",
			payload: func(_ *testing.T) *message.Message {
				return message.NewMessage(uuid.NewString(), []byte(`{"code":`))
			},
			wantAck:     true,
			wantHandled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := newStreamStub()
			handled := make(chan *events.LinkCreatedEvent, 1)

			consumer := messaging.NewConsumer(
				stream,
				events.TopicLinkCreated,
				func(_ context.Context, event *events.LinkCreatedEvent) error {
					handled <- event

					return tt.handlerErr
				},
				zap.NewNop(),
			)
			require.NoError(t, consumer.Start(context.Background()))

			msg := tt.payload(t)
			stream.deliveries <- msg

			assert.Equal(t, tt.wantAck, awaitSettled(t, msg))
			require.NoError(t, consumer.Shutdown())

			if tt.wantHandled {
				require.Len(t, handled, 1)
				assert.Equal(t, "abc123", (<-handled).Code)
			} else {
				assert.Empty(t, handled)
			}
		})
	}
}

func TestConsumerLifecycle(t *testing.T) {
	noop := func(context.Context, *events.LinkCreatedEvent) error { return nil }

	t.Run("subscribe failure is returned from start", func(t *testing.T) {
		stream := &streamStub{failWith: errors.New("stream unavailable")}
		consumer := messaging.NewConsumer(stream, events.TopicLinkCreated, noop, zap.NewNop())

		err := consumer.Start(context.Background())

		require.ErrorContains(t, err, "stream unavailable")
		assert.NoError(t, consumer.Shutdown())
	})

	t.Run("shutdown before start does not block", func(t *testing.T) {
		consumer := messaging.NewConsumer(newStreamStub(), events.TopicLinkCreated, noop, zap.NewNop())

		assert.NoError(t, consumer.Shutdown())
	})

	t.Run("closed stream ends the consume loop", func(t *testing.T) {
		stream := newStreamStub()
		consumer := messaging.NewConsumer(stream, events.TopicLinkCreated, noop, zap.NewNop())

		require.NoError(t, consumer.Start(context.Background()))
		require.NoError(t, stream.Close())

		assert.NoError(t, consumer.Shutdown())
	})

	t.Run("cancelled context ends the consume loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		consumer := messaging.NewConsumer(newStreamStub(), events.TopicLinkCreated, noop, zap.NewNop())

		require.NoError(t, consumer.Start(ctx))
		cancel()

		assert.NoError(t, consumer.Shutdown())
	})
}
