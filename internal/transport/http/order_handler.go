package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/pkg/httpx"
)

func (h *Handler) createOrder(c *gin.Context) {
	var in domain.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.orders.Create(ctx, in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"order":   order,
		"success": true,
	})
}

func (h *Handler) getOrder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	order, err := h.orders.Get(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) listOrders(c *gin.Context) {
	filter, err := parseOrderFilter(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	orders, err := h.orders.List(ctx, filter, httpx.QueryOrderBy(c), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) reportSummary(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	summary, err := h.reports.Summary(ctx)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// parseOrderFilter — белый список query-параметров списка заказов.
func parseOrderFilter(c *gin.Context) (domain.OrderFilter, error) {
	var f domain.OrderFilter
	f.CustomerNameContains = c.Query("customer_name_icontains")
	f.ProductNameContains = c.Query("product_name_icontains")
	f.ProductID = c.Query("product_id")

	var err error
	if f.TotalFrom, err = httpx.QueryDecimal(c, "total_amount_gte"); err != nil {
		return f, err
	}
	if f.TotalTo, err = httpx.QueryDecimal(c, "total_amount_lte"); err != nil {
		return f, err
	}
	if f.DateFrom, err = httpx.QueryTime(c, "order_date_gte"); err != nil {
		return f, err
	}
	if f.DateTo, err = httpx.QueryTime(c, "order_date_lte"); err != nil {
		return f, err
	}
	return f, nil
}
