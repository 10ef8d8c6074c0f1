package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
	"github.com/Gunvolt24/crm_backend/pkg/metrics"
)

// Проверка, что Producer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.EventPublisher = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer,
// чтобы легко подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// orderCreatedEvent — формат события order-created на шине.
type orderCreatedEvent struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	ProductIDs  []string  `json:"product_ids"`
	TotalAmount string    `json:"total_amount"`
	OrderDate   time.Time `json:"order_date"`
}

// Producer — обёртка над kafka.Writer + логгером.
// Публикация fire-and-forget: вызывающая сторона логирует ошибку
// и не откатывает мутацию.
type Producer struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewProducer — конструктор.
func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	return &Producer{
		writer: cfg.writer(),
		topic:  cfg.Topic,
		log:    log,
	}
}

// OrderCreated — публикует событие о созданном заказе (ключ — id заказа,
// чтобы события одного заказа попадали в одну партицию).
func (p *Producer) OrderCreated(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("order is nil")
	}

	productIDs := make([]string, 0, len(order.Products))
	for i := range order.Products {
		productIDs = append(productIDs, order.Products[i].ID)
	}

	payload, err := json.Marshal(orderCreatedEvent{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		ProductIDs:  productIDs,
		TotalAmount: order.TotalAmount.String(),
		OrderDate:   order.OrderDate,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID),
		Value: payload,
	}); err != nil {
		metrics.EventsFailed.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("write message: %w", err)
	}

	metrics.EventsPublished.WithLabelValues(p.topic).Inc()
	return nil
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

// NopPublisher — заглушка, когда шина событий не настроена.
type NopPublisher struct{}

func (NopPublisher) OrderCreated(context.Context, *domain.Order) error { return nil }
func (NopPublisher) Close() error                                      { return nil }
