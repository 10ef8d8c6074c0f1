package ports

import (
	"context"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

// CustomerValidator — проверка входных данных клиента
// (имя, корректность email, шаблон телефона).
type CustomerValidator interface {
	Validate(ctx context.Context, in *domain.CreateCustomerInput) error
}

// ProductValidator — проверка входных данных товара (цена, остаток).
type ProductValidator interface {
	Validate(ctx context.Context, in *domain.CreateProductInput) error
}
