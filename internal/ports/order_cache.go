package ports

import (
	"context"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

// OrderCache — кэш заказов по id. Кэшировать заказы безопасно:
// после создания заказ неизменяем (итог — снимок), инвалидация не нужна.
// Требования к реализации: потокобезопасность; доступ по ключу не хуже O(1);
// возврат копий сущности.
type OrderCache interface {
	// Get — вернуть заказ по id; (order, true) при попадании, (nil, false) при промахе/истечении.
	Get(ctx context.Context, id string) (*domain.Order, bool)

	// Set — сохранить заказ в кэше.
	Set(ctx context.Context, order *domain.Order) error

	// WarmUp — массовая загрузка кэша (например, при старте).
	WarmUp(ctx context.Context, orders []*domain.Order) error
}
