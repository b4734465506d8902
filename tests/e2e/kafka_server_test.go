package e2e_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/testcontainers/testcontainers-go/modules/kafka"
)

type mockKafkaServer struct {
	container *kafka.KafkaContainer
	consumer  sarama.Consumer
}

// ArchivedEvent is a record read back from the event archive topic.
type ArchivedEvent struct {
	Key     string
	Value   []byte
	Headers map[string]string
}

func setupMockKafkaServer(t *testing.T) *mockKafkaServer {
	t.Helper()

	ctx := context.Background()

	kafkaContainer, err := kafka.Run(ctx,
		"confluentinc/confluent-local:7.5.0",
		kafka.WithClusterID("test-cluster"),
	)
	if err != nil {
		t.Fatalf("Failed to start Kafka container: %v", err)
	}

	brokers, err := kafkaContainer.Brokers(ctx)
	if err != nil {
		t.Fatalf("Failed to get Kafka brokers: %v", err)
	}

	config := sarama.NewConfig()
	config.Version = sarama.V2_8_1_0
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumer(brokers, config)
	if err != nil {
		t.Fatalf("Failed to create consumer: %v", err)
	}

	return &mockKafkaServer{
		container: kafkaContainer,
		consumer:  consumer,
	}
}

// ReadTopic reads records from every partition of topic until want records
// have been collected or the timeout expires.
func (m *mockKafkaServer) ReadTopic(topic string, want int, timeout time.Duration) ([]ArchivedEvent, error) {
	partitions, err := m.consumer.Partitions(topic)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions for topic %s: %w", topic, err)
	}

	records := make(chan *sarama.ConsumerMessage)
	done := make(chan struct{})
	defer close(done)
	for _, partition := range partitions {
		pc, err := m.consumer.ConsumePartition(topic, partition, sarama.OffsetOldest)
		if err != nil {
			return nil, fmt.Errorf("failed to consume partition %d: %w", partition, err)
		}
		go func() {
			defer pc.AsyncClose()
			for {
				select {
				case msg := <-pc.Messages():
					select {
					case records <- msg:
					case <-done:
						return
					}
				case <-done:
					return
				}
			}
		}()
	}

	var events []ArchivedEvent
	deadline := time.After(timeout)
	for len(events) < want {
		select {
		case msg := <-records:
			headers := make(map[string]string, len(msg.Headers))
			for _, h := range msg.Headers {
				headers[string(h.Key)] = string(h.Value)
			}
			events = append(events, ArchivedEvent{
				Key:     string(msg.Key),
				Value:   msg.Value,
				Headers: headers,
			})
		case <-deadline:
			return events, errors.New("timed out waiting for archived events")
		}
	}
	return events, nil
}

// GetBrokerAddress returns the first broker address as a string
func (m *mockKafkaServer) GetBrokerAddress(t *testing.T) string {
	brokers, err := m.container.Brokers(t.Context())
	if err != nil {
		t.Fatalf("Failed to get Kafka brokers: %v", err)
	}
	if len(brokers) > 0 {
		return brokers[0]
	}
	t.Fatalf("No brokers found")
	return ""
}

// Close closes the mock Kafka server and cleans up resources
func (m *mockKafkaServer) Close() error {
	if m.consumer != nil {
		_ = m.consumer.Close()
	}
	if m.container != nil {
		return m.container.Terminate(context.Background())
	}
	return nil
}
