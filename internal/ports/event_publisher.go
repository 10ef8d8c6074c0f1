package ports

import (
	"context"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

// EventPublisher — публикация доменных событий во внешнюю шину.
// Публикация fire-and-forget: ошибка логируется вызывающей стороной
// и не откатывает уже зафиксированную мутацию.
type EventPublisher interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
	Close() error
}
