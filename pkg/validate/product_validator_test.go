package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

func TestProductValidator_OK(t *testing.T) {
	ctx := context.Background()
	v := NewProductValidator()

	stock := 20
	in := &domain.CreateProductInput{
		Name:  "Widget",
		Price: decimal.RequireFromString("9.99"),
		Stock: &stock,
	}
	if err := v.Validate(ctx, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductValidator_NilStockOK(t *testing.T) {
	ctx := context.Background()
	v := NewProductValidator()

	in := &domain.CreateProductInput{
		Name:  "Widget",
		Price: decimal.RequireFromString("0.01"),
	}
	if err := v.Validate(ctx, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductValidator_Rejects(t *testing.T) {
	ctx := context.Background()
	v := NewProductValidator()

	negative := -1
	cases := []struct {
		name string
		in   *domain.CreateProductInput
	}{
		{"nil input", nil},
		{"empty name", &domain.CreateProductInput{Price: decimal.RequireFromString("1")}},
		{"zero price", &domain.CreateProductInput{Name: "x", Price: decimal.Zero}},
		{"negative price", &domain.CreateProductInput{Name: "x", Price: decimal.RequireFromString("-5")}},
		{"negative stock", &domain.CreateProductInput{Name: "x", Price: decimal.RequireFromString("1"), Stock: &negative}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.in)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got: %v", err)
			}
		})
	}
}
