package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold — фиксированная граница «мало на складе»:
// товары со stock ниже неё попадают под пополнение.
const LowStockThreshold = 10

// RestockIncrement — фиксированная добавка к остатку при пополнении.
// Политика именно «добавить константу», а не «дополнить до уровня».
const RestockIncrement = 10

// Product — товар. Цена хранится как точный decimal (NUMERIC в БД),
// остаток — неотрицательное целое.
type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// IsLowStock — true, если товар ниже порога пополнения.
func (p *Product) IsLowStock() bool { return p.Stock < LowStockThreshold }

// ProductFilter — белый список необязательных предикатов списка товаров.
type ProductFilter struct {
	NameContains string           // подстрока имени, без учёта регистра
	PriceFrom    *decimal.Decimal // price >=
	PriceTo      *decimal.Decimal // price <=
	StockFrom    *int             // stock >=
	StockTo      *int             // stock <=
	LowStock     bool             // stock < LowStockThreshold
}
