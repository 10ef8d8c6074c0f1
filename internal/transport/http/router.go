package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/crm_backend/pkg/httpx"
)

// NewRouter — маршруты query/mutation API.
// otelServiceName != "" включает otelgin-трейсинг входящих запросов.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/customers", h.createCustomer)
		api.POST("/customers/bulk", h.bulkCreateCustomers)
		api.GET("/customers", h.listCustomers)
		api.GET("/customers/:id", h.getCustomer)

		api.POST("/products", h.createProduct)
		api.POST("/products/restock", h.restockLowStock)
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)

		api.POST("/orders", h.createOrder)
		api.GET("/orders", h.listOrders)
		api.GET("/orders/:id", h.getOrder)

		api.GET("/reports/summary", h.reportSummary)
	}

	return r
}
