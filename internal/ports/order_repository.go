package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

// OrderRepository — хранилище заказов.
// Create выполняет запись заказа, связок с товарами и итоговой суммы
// в одной транзакции: читатель никогда не видит заказ без суммы или товаров.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error

	// GetByID — (nil, nil), если записи нет; товары подгружаются.
	GetByID(ctx context.Context, id string) (*domain.Order, error)

	List(ctx context.Context, filter domain.OrderFilter, orderBy []string, limit, offset int) ([]*domain.Order, error)

	// LastN — последние N заказов (для прогрева кэша).
	LastN(ctx context.Context, n int) ([]*domain.Order, error)

	// Count и TotalRevenue — агрегаты для сводного отчёта.
	Count(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}
