package ports

import (
	"context"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

// Контракты прикладного слоя, которыми пользуется HTTP-транспорт.
// Разделены по сущностям, чтобы моки в тестах хендлеров были узкими.

// CustomerService — мутации и чтение клиентов.
type CustomerService interface {
	Create(ctx context.Context, in domain.CreateCustomerInput) (*domain.Customer, error)
	BulkCreate(ctx context.Context, ins []domain.CreateCustomerInput) (*domain.BulkCreateResult, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, filter domain.CustomerFilter, orderBy []string, limit, offset int) ([]*domain.Customer, error)
}

// ProductService — мутации и чтение товаров.
type ProductService interface {
	Create(ctx context.Context, in domain.CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter, orderBy []string, limit, offset int) ([]*domain.Product, error)
	RestockLowStock(ctx context.Context) *domain.RestockResult
}

// OrderService — создание и чтение заказов.
type OrderService interface {
	Create(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter, orderBy []string, limit, offset int) ([]*domain.Order, error)
}

// ReportService — агрегаты для сводного отчёта.
type ReportService interface {
	Summary(ctx context.Context) (*domain.ReportSummary, error)
}
