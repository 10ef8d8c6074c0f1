package ports

import (
	"context"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

// CustomerRepository — хранилище клиентов.
// Create обязан транслировать нарушение уникальности email
// в ошибку, оборачивающую domain.ErrValidation.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error

	// GetByID — (nil, nil), если записи нет.
	GetByID(ctx context.Context, id string) (*domain.Customer, error)

	List(ctx context.Context, filter domain.CustomerFilter, orderBy []string, limit, offset int) ([]*domain.Customer, error)

	// Count — общее число клиентов (для отчётов).
	Count(ctx context.Context) (int, error)
}
