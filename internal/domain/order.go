package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order — заказ. TotalAmount — снимок: точная сумма цен товаров
// на момент создания; последующие изменения цен заказ не трогают.
// После создания заказ неизменяем.
type Order struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Products    []Product       `json:"products"`
	OrderDate   time.Time       `json:"order_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SumPrices — точная decimal-сумма цен набора товаров.
func SumPrices(products []Product) decimal.Decimal {
	total := decimal.Zero
	for i := range products {
		total = total.Add(products[i].Price)
	}
	return total
}

// OrderFilter — белый список необязательных предикатов списка заказов.
// Предикаты по товарам (ProductNameContains, ProductID) проходят через
// связь many-to-many; результат в этом случае обязан быть DISTINCT.
type OrderFilter struct {
	TotalFrom            *decimal.Decimal // total_amount >=
	TotalTo              *decimal.Decimal // total_amount <=
	DateFrom             *time.Time       // order_date >=
	DateTo               *time.Time       // order_date <=
	CustomerNameContains string           // подстрока имени клиента
	ProductNameContains  string           // подстрока имени товара
	ProductID            string           // заказ содержит товар
}
