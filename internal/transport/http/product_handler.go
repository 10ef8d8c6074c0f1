package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/pkg/httpx"
)

func (h *Handler) createProduct(c *gin.Context) {
	var in domain.CreateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	product, err := h.products.Create(ctx, in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"product": product,
		"success": true,
	})
}

// restockLowStock — запуск пополнения. Операция не «роняет» ошибку наружу:
// всегда 200 со структурированным результатом и флагом success.
func (h *Handler) restockLowStock(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	result := h.products.RestockLowStock(ctx)
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	product, err := h.products.Get(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) listProducts(c *gin.Context) {
	filter, err := parseProductFilter(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	products, err := h.products.List(ctx, filter, httpx.QueryOrderBy(c), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// parseProductFilter — белый список query-параметров списка товаров.
func parseProductFilter(c *gin.Context) (domain.ProductFilter, error) {
	var f domain.ProductFilter
	f.NameContains = c.Query("name_icontains")
	f.LowStock = httpx.QueryBool(c, "low_stock")

	var err error
	if f.PriceFrom, err = httpx.QueryDecimal(c, "price_gte"); err != nil {
		return f, err
	}
	if f.PriceTo, err = httpx.QueryDecimal(c, "price_lte"); err != nil {
		return f, err
	}
	if f.StockFrom, err = httpx.QueryInt(c, "stock_gte"); err != nil {
		return f, err
	}
	if f.StockTo, err = httpx.QueryInt(c, "stock_lte"); err != nil {
		return f, err
	}
	return f, nil
}
