package kafka

import (
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

func TestProducerConfig_writer(t *testing.T) {
	t.Parallel()

	cfg := ProducerConfig{
		Brokers:      []string{"k1:9092", "k2:9092"},
		Topic:        "crm.orders.created",
		WriteTimeout: 3 * time.Second,
	}

	w := cfg.writer()
	defer w.Close()

	if w.Topic != cfg.Topic {
		t.Fatalf("Topic: want %s, got %s", cfg.Topic, w.Topic)
	}
	if w.WriteTimeout != cfg.WriteTimeout {
		t.Fatalf("WriteTimeout: want %v, got %v", cfg.WriteTimeout, w.WriteTimeout)
	}
	if _, ok := w.Balancer.(*kafkago.Hash); !ok {
		t.Fatalf("Balancer: want *kafka.Hash, got %T", w.Balancer)
	}
	if w.RequiredAcks != kafkago.RequireOne {
		t.Fatalf("RequiredAcks: want RequireOne, got %v", w.RequiredAcks)
	}
}

func TestProducerConfig_writer_DefaultTimeout(t *testing.T) {
	t.Parallel()

	cfg := ProducerConfig{Brokers: []string{"k1:9092"}, Topic: "t"}

	w := cfg.writer()
	defer w.Close()

	if w.WriteTimeout != 5*time.Second {
		t.Fatalf("WriteTimeout default: want 5s, got %v", w.WriteTimeout)
	}
}
