package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

// APIClient — тонкий HTTP-клиент к API сервиса.
// Фоновые задачи ходят в сервис снаружи, как обычный потребитель,
// а не напрямую в БД.
type APIClient struct {
	baseURL string
	httpc   *http.Client
}

// NewAPIClient — конструктор; timeout <= 0 означает дефолтные 10s.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// Ping — проверка живости API.
func (c *APIClient) Ping(ctx context.Context) error {
	return c.getJSON(ctx, "/ping", nil, nil)
}

// RestockLowStock — запуск пополнения товаров с низким остатком.
func (c *APIClient) RestockLowStock(ctx context.Context) (*domain.RestockResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/products/restock", http.NoBody)
	if err != nil {
		return nil, err
	}
	var result domain.RestockResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReportSummary — сводный отчёт по клиентам/заказам/выручке.
func (c *APIClient) ReportSummary(ctx context.Context) (*domain.ReportSummary, error) {
	var summary domain.ReportSummary
	if err := c.getJSON(ctx, "/api/reports/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// RecentOrders — заказы с датой не раньше since, свежие первыми.
func (c *APIClient) RecentOrders(ctx context.Context, since time.Time, limit int) ([]*domain.Order, error) {
	q := url.Values{}
	q.Set("order_date_gte", since.Format(time.RFC3339))
	q.Set("order_by", "-order_date")
	q.Set("limit", fmt.Sprintf("%d", limit))

	var orders []*domain.Order
	if err := c.getJSON(ctx, "/api/orders", q, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Customer — клиент по id; nil нельзя получить: 404 приходит ошибкой.
func (c *APIClient) Customer(ctx context.Context, id string) (*domain.Customer, error) {
	var customer domain.Customer
	if err := c.getJSON(ctx, "/api/customers/"+url.PathEscape(id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *APIClient) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *APIClient) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
