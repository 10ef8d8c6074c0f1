package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports/mocks"
	"github.com/Gunvolt24/crm_backend/internal/usecase"
)

func TestProductCreate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockProductRepository(ctrl)
	validator := mocks.NewMockProductValidator(ctrl)

	stock := 15
	in := domain.CreateProductInput{
		Name:  "Widget",
		Price: decimal.RequireFromString("9.99"),
		Stock: &stock,
	}

	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&domain.Product{})).Return(nil),
	)

	svc := usecase.NewProductService(repo, validator, noopLogger{})
	got, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" || !got.Price.Equal(in.Price) || got.Stock != 15 {
		t.Fatalf("unexpected product: %+v", got)
	}
}

// Отсутствующий stock означает 0.
func TestProductCreate_DefaultStockZero(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockProductRepository(ctrl)
	validator := mocks.NewMockProductValidator(ctrl)

	var created *domain.Product
	gomock.InOrder(
		validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Product) error {
				created = p
				return nil
			}),
	)

	svc := usecase.NewProductService(repo, validator, noopLogger{})
	if _, err := svc.Create(context.Background(), domain.CreateProductInput{
		Name:  "Widget",
		Price: decimal.RequireFromString("1.50"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.Stock != 0 {
		t.Fatalf("want stock 0, got %+v", created)
	}
}

func TestProductCreate_ValidationFailed(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockProductRepository(ctrl)
	validator := mocks.NewMockProductValidator(ctrl)

	vErr := fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(vErr)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewProductService(repo, validator, noopLogger{})
	got, err := svc.Create(context.Background(), domain.CreateProductInput{Name: "Widget"})
	if got != nil || !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("want ErrValidation, got product=%v err=%v", got, err)
	}
}

func TestRestockLowStock_Updated(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockProductRepository(ctrl)
	validator := mocks.NewMockProductValidator(ctrl)

	updated := []*domain.Product{
		{ID: "p1", Stock: 13},
		{ID: "p2", Stock: 10},
	}
	repo.EXPECT().RestockBelow(gomock.Any(), domain.LowStockThreshold, domain.RestockIncrement).Return(updated, nil)

	svc := usecase.NewProductService(repo, validator, noopLogger{})
	result := svc.RestockLowStock(context.Background())
	if !result.Success {
		t.Fatalf("want success, got %+v", result)
	}
	if result.Message != "Updated 2 low-stock products" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if len(result.Products) != 2 {
		t.Fatalf("unexpected products: %+v", result.Products)
	}
}

func TestRestockLowStock_NothingToUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockProductRepository(ctrl)
	validator := mocks.NewMockProductValidator(ctrl)

	repo.EXPECT().RestockBelow(gomock.Any(), domain.LowStockThreshold, domain.RestockIncrement).Return(nil, nil)

	svc := usecase.NewProductService(repo, validator, noopLogger{})
	result := svc.RestockLowStock(context.Background())
	if !result.Success || result.Message != "Updated 0 low-stock products" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Products == nil || len(result.Products) != 0 {
		t.Fatalf("products must be an empty slice, got %#v", result.Products)
	}
}

// Сбой хранилища не поднимается наружу ошибкой:
// операция всегда возвращает структурированный результат.
func TestRestockLowStock_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockProductRepository(ctrl)
	validator := mocks.NewMockProductValidator(ctrl)

	repo.EXPECT().RestockBelow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("DB down"))

	svc := usecase.NewProductService(repo, validator, noopLogger{})
	result := svc.RestockLowStock(context.Background())
	if result.Success {
		t.Fatalf("want failure, got %+v", result)
	}
	if result.Message != "Error updating low-stock products: DB down" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}
