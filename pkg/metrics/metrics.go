package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CustomersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_customers_created_total",
			Help: "Number of customers created",
		},
	)
	ProductsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_products_created_total",
			Help: "Number of products created",
		},
	)
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_orders_created_total",
			Help: "Number of orders created",
		},
	)
	BulkRowsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_bulk_customer_rows_failed_total",
			Help: "Number of rejected rows in bulk customer creation",
		},
	)
	LowStockProductsRestocked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_low_stock_products_restocked_total",
			Help: "Number of products bumped by the low-stock sweep",
		},
	)
)

var (
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_events_published_total",
			Help: "Number of domain events published to the bus",
		},
		[]string{"topic"},
	)
	EventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_events_publish_failed_total",
			Help: "Number of domain events that failed to publish",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в реестре по умолчанию.
// Повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(register)
}

func register() {
	prometheus.MustRegister(
		CustomersCreated, ProductsCreated, OrdersCreated,
		BulkRowsFailed, LowStockProductsRestocked,
		EventsPublished, EventsFailed,
		CacheOps, CacheSize,
	)
}
