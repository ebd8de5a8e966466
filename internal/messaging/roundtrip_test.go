package messaging_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/serroba/linx/internal/events"
	"github.com/serroba/linx/internal/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublishConsumeRoundTrip(t *testing.T) {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 10},
		messaging.NewLoggerAdapter(zap.NewNop()),
	)

	received := make(chan *events.LinkCreatedEvent, 1)

	consumer := messaging.NewConsumer(
		pubSub,
		events.TopicLinkCreated,
		func(_ context.Context, event *events.LinkCreatedEvent) error {
			received <- event

			return nil
		},
		zap.NewNop(),
	)

	group := messaging.NewConsumerGroup(pubSub, zap.NewNop())
	group.Add(consumer)
	require.NoError(t, group.Start(context.Background()))

	publish := messaging.NewPublishFunc[events.LinkCreatedEvent](pubSub, events.TopicLinkCreated)
	require.NoError(t, publish(context.Background(), &events.LinkCreatedEvent{Code: "ex", URL: "https://example.com", Generated: false}))

	select {
	case event := <-received:
		assert.Equal(t, "ex", event.Code)
		assert.Equal(t, "https://example.com", event.URL)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	assert.NoError(t, group.Shutdown())
}
