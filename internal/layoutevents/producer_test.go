package layoutevents

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishLayoutSaved(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got LayoutSaved
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.Type != EventLayoutSaved || got.EventID != "evt-1" || got.Seats != 50 {
			return errors.New("unexpected payload")
		}
		return nil
	})

	pub := NewPublisher(producer, DefaultKafkaProducerConfig())
	event := &LayoutSaved{EventID: "evt-1", Version: 3, Zones: 1, Seats: 50, AvailableSeats: 50}

	require.NoError(t, pub.PublishLayoutSaved(context.Background(), event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.OccurredAt.IsZero())
	require.NoError(t, pub.Close())
}

func TestPublishTemplateSaved_Failure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewPublisher(producer, DefaultKafkaProducerConfig())
	err := pub.PublishTemplateSaved(context.Background(), &TemplateSaved{TemplateID: "tpl-1", Name: "Theater"})

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, pub.Close())
}

func TestSaramaConfig(t *testing.T) {
	cfg := DefaultKafkaProducerConfig().SaramaConfig()

	assert.True(t, cfg.Producer.Return.Successes)
	assert.True(t, cfg.Producer.Idempotent)
	assert.Equal(t, 1, cfg.Net.MaxOpenRequests)
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
}

func TestNopPublisher(t *testing.T) {
	var pub Publisher = NopPublisher{}
	assert.NoError(t, pub.PublishLayoutSaved(context.Background(), &LayoutSaved{}))
	assert.NoError(t, pub.PublishTemplateSaved(context.Background(), &TemplateSaved{}))
	assert.NoError(t, pub.Close())
}
