package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
)

// Handler — HTTP-обработчики query/mutation API поверх прикладных сервисов.
type Handler struct {
	customers ports.CustomerService
	products  ports.ProductService
	orders    ports.OrderService
	reports   ports.ReportService
	log       ports.Logger
	timeout   time.Duration
}

// NewHandler — конструктор; timeout <= 0 отключает пер-запросный дедлайн.
func NewHandler(
	customers ports.CustomerService,
	products ports.ProductService,
	orders ports.OrderService,
	reports ports.ReportService,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{
		customers: customers,
		products:  products,
		orders:    orders,
		reports:   reports,
		log:       log,
		timeout:   timeout,
	}
}

// requestContext — контекст запроса с опциональным дедлайном обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request.Context()
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}

// writeError — единое отображение доменных ошибок на статусы HTTP:
// ErrValidation → 400, ErrNotFound → 404, прочее → 500 без деталей.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Errorf(c.Request.Context(), "internal error path=%s err=%v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// badRequest — ошибка разбора параметров запроса.
func (h *Handler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
