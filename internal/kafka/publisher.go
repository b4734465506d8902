package kafka

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/line-bot-api/internal/linebot/event"
	"github.com/IBM/sarama"
	"github.com/ThreeDotsLabs/watermill"
	wm_kafka "github.com/ThreeDotsLabs/watermill-kafka/v3/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// Metadata keys set on every archived event.
const (
	MetadataEventType      = "event_type"
	MetadataDestination    = "destination"
	MetadataWebhookEventID = "webhook_event_id"
	MetadataSenderID       = "sender_id"
)

type Config struct {
	ClusterConfig   *sarama.Config
	BrokerAddresses []string
	Topic           string
}

// EventPublisher archives inbound webhook events to a Kafka topic.
type EventPublisher struct {
	publisher message.Publisher
	topic     string
}

func NewEventPublisher(cfg *Config) (*EventPublisher, error) {
	saramaPublisherConfig := wm_kafka.DefaultSaramaSyncPublisherConfig()
	if cfg.ClusterConfig != nil {
		saramaPublisherConfig.Version = cfg.ClusterConfig.Version
	}

	publisher, err := wm_kafka.NewPublisher(
		wm_kafka.PublisherConfig{
			Brokers:               cfg.BrokerAddresses,
			Marshaler:             wm_kafka.NewWithPartitioningMarshaler(partitionBySender),
			OverwriteSaramaConfig: saramaPublisherConfig,
		},
		watermill.NewStdLogger(false, false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}

	return newEventPublisher(publisher, cfg.Topic), nil
}

func newEventPublisher(publisher message.Publisher, topic string) *EventPublisher {
	return &EventPublisher{
		publisher: publisher,
		topic:     topic,
	}
}

// Archive publishes every event of the callback, in order, as one message per event.
func (p *EventPublisher) Archive(ctx context.Context, callback *event.Callback) error {
	if len(callback.Events) == 0 {
		return nil
	}
	msgs := make([]*message.Message, 0, len(callback.Events))
	for _, ev := range callback.Events {
		common := ev.Common()
		msg := message.NewMessage(uuid.NewString(), message.Payload(common.Raw()))
		msg.Metadata.Set(MetadataEventType, string(common.Type))
		msg.Metadata.Set(MetadataDestination, callback.Destination)
		msg.Metadata.Set(MetadataWebhookEventID, common.WebhookEventID)
		msg.Metadata.Set(MetadataSenderID, common.Source.SenderID())
		msg.SetContext(ctx)
		msgs = append(msgs, msg)
	}
	if err := p.publisher.Publish(p.topic, msgs...); err != nil {
		return fmt.Errorf("failed to publish events to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes and closes the underlying producer.
func (p *EventPublisher) Close() error {
	return p.publisher.Close()
}

// partitionBySender keeps all events of one chat on the same partition.
func partitionBySender(_ string, msg *message.Message) (string, error) {
	return msg.Metadata.Get(MetadataSenderID), nil
}
