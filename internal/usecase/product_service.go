package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
	"github.com/Gunvolt24/crm_backend/pkg/metrics"
)

// Проверка, что ProductService удовлетворяет интерфейсу ports.ProductService.
var _ ports.ProductService = (*ProductService)(nil)

// ProductService — прикладная логика работы с товарами.
type ProductService struct {
	repo      ports.ProductRepository
	validator ports.ProductValidator
	log       ports.Logger
}

// NewProductService — DI-конструктор.
func NewProductService(repo ports.ProductRepository, validator ports.ProductValidator, log ports.Logger) *ProductService {
	return &ProductService{repo: repo, validator: validator, log: log}
}

// Create — создать товар: цена строго положительна,
// остаток неотрицателен (по умолчанию 0).
func (s *ProductService) Create(ctx context.Context, in domain.CreateProductInput) (*domain.Product, error) {
	if err := s.validator.Validate(ctx, &in); err != nil {
		s.log.Warnf(ctx, "product validation failed name=%s err=%v", in.Name, err)
		return nil, err
	}

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}

	product := &domain.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Price:     in.Price,
		Stock:     stock,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.log.Errorf(ctx, "repo.Create product failed name=%s err=%v", in.Name, err)
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	s.log.Infof(ctx, "product created id=%s price=%s stock=%d", product.ID, product.Price, product.Stock)
	return product, nil
}

// Get — товар по id; (nil, nil), если записи нет.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List — проксирование в репозиторий.
func (s *ProductService) List(ctx context.Context, filter domain.ProductFilter, orderBy []string, limit, offset int) ([]*domain.Product, error) {
	return s.repo.List(ctx, filter, orderBy, limit, offset)
}

// RestockLowStock — пополнение: каждому товару со stock < порога
// прибавляется фиксированная добавка (именно «добавить константу»,
// не «дополнить до уровня»). Наружу ошибки не поднимаются: при сбое
// возвращается Success=false с описанием.
func (s *ProductService) RestockLowStock(ctx context.Context) *domain.RestockResult {
	updated, err := s.repo.RestockBelow(ctx, domain.LowStockThreshold, domain.RestockIncrement)
	if err != nil {
		s.log.Errorf(ctx, "restock failed err=%v", err)
		return &domain.RestockResult{
			Products: []*domain.Product{},
			Message:  fmt.Sprintf("Error updating low-stock products: %v", err),
			Success:  false,
		}
	}

	metrics.LowStockProductsRestocked.Add(float64(len(updated)))
	s.log.Infof(ctx, "restock done updated=%d", len(updated))
	if updated == nil {
		updated = []*domain.Product{}
	}
	return &domain.RestockResult{
		Products: updated,
		Message:  fmt.Sprintf("Updated %d low-stock products", len(updated)),
		Success:  true,
	}
}
