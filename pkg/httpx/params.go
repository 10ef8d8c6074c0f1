package httpx

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseLimitOffset — читает limit/offset из query с дефолтами и границами.
func ParseLimitOffset(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil {
		limit = ClampInt(v, 1, maxLimit)
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = v
	}
	return
}

// QueryInt — опциональный целочисленный параметр; nil, если параметр не задан.
func QueryInt(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	return &v, nil
}

// QueryDecimal — опциональный decimal-параметр; nil, если параметр не задан.
func QueryDecimal(c *gin.Context, name string) (*decimal.Decimal, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	return &v, nil
}

// QueryTime — опциональный параметр даты/времени: RFC3339 либо YYYY-MM-DD.
func QueryTime(c *gin.Context, name string) (*time.Time, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", name, err)
	}
	return &t, nil
}

// QueryBool — флаговый параметр; true для "true"/"1".
func QueryBool(c *gin.Context, name string) bool {
	raw := strings.ToLower(c.Query(name))
	return raw == "true" || raw == "1"
}

// QueryOrderBy — список полей сортировки через запятую
// (минус перед именем — по убыванию, как в order_by=-price,name).
func QueryOrderBy(c *gin.Context) []string {
	raw := strings.TrimSpace(c.Query("order_by"))
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
