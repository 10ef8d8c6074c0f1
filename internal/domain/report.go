package domain

import "github.com/shopspring/decimal"

// ReportSummary — сводка CRM: общее число клиентов и заказов
// и суммарная выручка (сумма снимков total_amount).
type ReportSummary struct {
	Customers int             `json:"customers"`
	Orders    int             `json:"orders"`
	Revenue   decimal.Decimal `json:"revenue"`
}
