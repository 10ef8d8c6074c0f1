package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Явные структуры запросов мутаций: обязательные/опциональные поля
// перечислены по операциям, валидация выполняется до обращения к БД.

// CreateCustomerInput — вход createCustomer / строки bulkCreateCustomers.
type CreateCustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"` // опционально, проверяется по шаблону
}

// CreateProductInput — вход createProduct. Stock == nil означает 0.
type CreateProductInput struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock *int            `json:"stock,omitempty"`
}

// CreateOrderInput — вход createOrder. OrderDate == nil означает «сейчас».
type CreateOrderInput struct {
	CustomerID string     `json:"customer_id"`
	ProductIDs []string   `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date,omitempty"`
}

// BulkCreateResult — результат bulkCreateCustomers: успешные записи,
// пер-строчные ошибки вида "Row N: ..." (нумерация с 1) и итоговый флаг.
// Success == true только при пустом списке ошибок.
type BulkCreateResult struct {
	Customers []*Customer `json:"customers"`
	Errors    []string    `json:"errors"`
	Success   bool        `json:"success"`
}

// RestockResult — результат updateLowStockProducts. Операция никогда не
// «роняет» ошибку наружу: при внутреннем сбое Success == false и
// описательное сообщение.
type RestockResult struct {
	Products []*Product `json:"updated_products"`
	Message  string     `json:"message"`
	Success  bool       `json:"success"`
}
