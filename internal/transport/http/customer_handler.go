package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/pkg/httpx"
)

func (h *Handler) createCustomer(c *gin.Context) {
	var in domain.CreateCustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	customer, err := h.customers.Create(ctx, in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"customer": customer,
		"message":  "Customer created successfully",
		"success":  true,
	})
}

func (h *Handler) bulkCreateCustomers(c *gin.Context) {
	var ins []domain.CreateCustomerInput
	if err := c.ShouldBindJSON(&ins); err != nil {
		h.badRequest(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	result, err := h.customers.BulkCreate(ctx, ins)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getCustomer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	customer, err := h.customers.Get(ctx, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) listCustomers(c *gin.Context) {
	filter, err := parseCustomerFilter(c)
	if err != nil {
		h.badRequest(c, err)
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, 20, 100)

	ctx, cancel := h.requestContext(c)
	defer cancel()

	customers, err := h.customers.List(ctx, filter, httpx.QueryOrderBy(c), limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// parseCustomerFilter — белый список query-параметров списка клиентов.
func parseCustomerFilter(c *gin.Context) (domain.CustomerFilter, error) {
	var f domain.CustomerFilter
	f.NameContains = c.Query("name_icontains")
	f.EmailContains = c.Query("email_icontains")
	f.PhonePrefix = c.Query("phone_pattern")

	var err error
	if f.CreatedFrom, err = httpx.QueryTime(c, "created_at_gte"); err != nil {
		return f, err
	}
	if f.CreatedTo, err = httpx.QueryTime(c, "created_at_lte"); err != nil {
		return f, err
	}
	return f, nil
}
