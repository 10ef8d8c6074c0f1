//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeCustomerInput — валидный вход createCustomer с уникальным email.
func MakeCustomerInput(opts ...func(*domain.CreateCustomerInput)) domain.CreateCustomerInput {
	in := domain.CreateCustomerInput{
		Name:  "Customer " + UniqSuffix(),
		Email: fmt.Sprintf("customer-%s@example.com", UniqSuffix()),
		Phone: "+1 202-555-0134",
	}
	for _, fn := range opts {
		fn(&in)
	}
	return in
}

func WithEmail(email string) func(*domain.CreateCustomerInput) {
	return func(in *domain.CreateCustomerInput) { in.Email = email }
}

func WithPhone(phone string) func(*domain.CreateCustomerInput) {
	return func(in *domain.CreateCustomerInput) { in.Phone = phone }
}

// MakeProductInput — валидный вход createProduct.
func MakeProductInput(opts ...func(*domain.CreateProductInput)) domain.CreateProductInput {
	stock := 20
	in := domain.CreateProductInput{
		Name:  "Product " + UniqSuffix(),
		Price: decimal.RequireFromString("9.99"),
		Stock: &stock,
	}
	for _, fn := range opts {
		fn(&in)
	}
	return in
}

func WithPrice(price string) func(*domain.CreateProductInput) {
	return func(in *domain.CreateProductInput) { in.Price = decimal.RequireFromString(price) }
}

func WithStock(stock int) func(*domain.CreateProductInput) {
	return func(in *domain.CreateProductInput) { in.Stock = &stock }
}

// MakeOrderInput — вход createOrder на уже существующие сущности.
func MakeOrderInput(customerID string, productIDs ...string) domain.CreateOrderInput {
	return domain.CreateOrderInput{
		CustomerID: customerID,
		ProductIDs: productIDs,
	}
}

// ---- готовые сущности для уровня репозиториев ----

// MakeCustomer — сохранённый вид клиента с уникальным email.
func MakeCustomer(opts ...func(*domain.CreateCustomerInput)) domain.Customer {
	in := MakeCustomerInput(opts...)
	return domain.Customer{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}
}

// MakeProduct — сохранённый вид товара.
func MakeProduct(opts ...func(*domain.CreateProductInput)) domain.Product {
	in := MakeProductInput(opts...)
	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	return domain.Product{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Price:     in.Price,
		Stock:     stock,
		CreatedAt: time.Now().UTC(),
	}
}

// MakeOrder — сохранённый вид заказа на переданные товары;
// итог — точная сумма их цен.
func MakeOrder(customer domain.Customer, products ...domain.Product) domain.Order {
	now := time.Now().UTC()
	return domain.Order{
		ID:          uuid.NewString(),
		CustomerID:  customer.ID,
		Products:    products,
		OrderDate:   now,
		TotalAmount: domain.SumPrices(products),
		CreatedAt:   now,
	}
}
