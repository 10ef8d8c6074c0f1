package kafka

import (
	"time"

	"github.com/segmentio/kafka-go"
)

// ProducerConfig — настройки продюсера событий.
// Пустой список брокеров означает, что публикация выключена
// (bootstrap подставит no-op publisher).
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

func (c *ProducerConfig) writer() *kafka.Writer {
	wt := c.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        c.Topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: wt,
		RequiredAcks: kafka.RequireOne,
	}
}
