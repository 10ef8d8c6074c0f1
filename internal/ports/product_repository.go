package ports

import (
	"context"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

// ProductRepository — хранилище товаров.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error

	// GetByID — (nil, nil), если записи нет.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	List(ctx context.Context, filter domain.ProductFilter, orderBy []string, limit, offset int) ([]*domain.Product, error)

	// RestockBelow — всем товарам со stock < threshold прибавляет increment
	// и возвращает обновлённые записи (может быть пусто).
	RestockBelow(ctx context.Context, threshold, increment int) ([]*domain.Product, error)
}
