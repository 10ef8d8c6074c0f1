package validate

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
)

// Проверка, что ProductValidator удовлетворяет интерфейсу ports.ProductValidator.
var _ ports.ProductValidator = (*ProductValidator)(nil)

// ProductValidator — проверка входа createProduct.
type ProductValidator struct{}

// NewProductValidator — конструктор ProductValidator.
func NewProductValidator() *ProductValidator { return &ProductValidator{} }

// Validate — цена строго положительна, остаток (если задан) неотрицателен.
func (v *ProductValidator) Validate(_ context.Context, in *domain.CreateProductInput) error {
	if in == nil {
		return fmt.Errorf("%w: input is required", domain.ErrValidation)
	}
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if !in.Price.IsPositive() {
		return fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}
	if in.Stock != nil && *in.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", domain.ErrValidation)
	}
	return nil
}
