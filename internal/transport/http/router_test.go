package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports/mocks"
	rest "github.com/Gunvolt24/crm_backend/internal/transport/http"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type handlerMocks struct {
	customers *mocks.MockCustomerService
	products  *mocks.MockProductService
	orders    *mocks.MockOrderService
	reports   *mocks.MockReportService
}

func newRouter(ctrl *gomock.Controller) (handlerMocks, http.Handler) {
	m := handlerMocks{
		customers: mocks.NewMockCustomerService(ctrl),
		products:  mocks.NewMockProductService(ctrl),
		orders:    mocks.NewMockOrderService(ctrl),
		reports:   mocks.NewMockReportService(ctrl),
	}
	h := rest.NewHandler(m.customers, m.products, m.orders, m.reports, noopLogger{}, 0)
	return m, rest.NewRouter(h, "")
}

func TestCreateCustomer_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	want := &domain.Customer{ID: "cust-1", Name: "John", Email: "john@example.com"}
	m.customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(want, nil)

	body := `{"name":"John","email":"john@example.com","phone":"+1234567890"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Customer *domain.Customer `json:"customer"`
		Message  string           `json:"message"`
		Success  bool             `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || resp.Message != "Customer created successfully" || resp.Customer.ID != "cust-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateCustomer_ValidationError_400(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	vErr := fmt.Errorf("%w: invalid phone format. Use '+1234567890' or '123-456-7890'", domain.ErrValidation)
	m.customers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, vErr)

	body := `{"name":"John","email":"john@example.com","phone":"abc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "invalid phone format") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCreateCustomer_MalformedJSON_400(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	m.customers.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader("{"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestBulkCreateCustomers_PartialFailure_200(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	result := &domain.BulkCreateResult{
		Customers: []*domain.Customer{{ID: "cust-1"}},
		Errors:    []string{"Row 2: invalid email format"},
		Success:   false,
	}
	m.customers.EXPECT().BulkCreate(gomock.Any(), gomock.Len(2)).Return(result, nil)

	body := `[{"name":"A","email":"a@example.com"},{"name":"B","email":"bad"}]`
	req := httptest.NewRequest(http.MethodPost, "/api/customers/bulk", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.BulkCreateResult
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Success || len(got.Errors) != 1 || got.Errors[0] != "Row 2: invalid email format" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetCustomer_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	m.customers.EXPECT().Get(gomock.Any(), "missing").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/customers/missing", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListCustomers_FilterAndPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	ret := []*domain.Customer{{ID: "a"}, {ID: "b"}}
	m.customers.EXPECT().
		List(gomock.Any(), gomock.Any(), []string{"-created_at"}, 3, 7).
		DoAndReturn(func(_ context.Context, f domain.CustomerFilter, _ []string, _, _ int) ([]*domain.Customer, error) {
			if f.NameContains != "john" || f.EmailContains != "example" {
				return nil, fmt.Errorf("unexpected filter: %+v", f)
			}
			return ret, nil
		})

	url := "/api/customers?name_icontains=john&email_icontains=example&order_by=-created_at&limit=3&offset=7"
	req := httptest.NewRequest(http.MethodGet, url, http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got []*domain.Customer
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListCustomers_UnknownOrderField_400(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	vErr := fmt.Errorf("%w: unknown order field %q", domain.ErrValidation, "secret")
	m.customers.EXPECT().List(gomock.Any(), gomock.Any(), []string{"secret"}, 20, 0).Return(nil, vErr)

	req := httptest.NewRequest(http.MethodGet, "/api/customers?order_by=secret", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateProduct_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	want := &domain.Product{ID: "p1", Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 15}
	m.products.EXPECT().Create(gomock.Any(), gomock.Any()).Return(want, nil)

	body := `{"name":"Widget","price":"9.99","stock":15}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestRestockLowStock_AlwaysOK(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	result := &domain.RestockResult{
		Products: []*domain.Product{},
		Message:  "Error updating low-stock products: DB down",
		Success:  false,
	}
	m.products.EXPECT().RestockLowStock(gomock.Any()).Return(result)

	req := httptest.NewRequest(http.MethodPost, "/api/products/restock", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// даже при сбое операция отвечает 200 со структурированным результатом
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.RestockResult
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Success || got.Message != result.Message {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestListProducts_LowStockFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	m.products.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Nil(), 20, 0).
		DoAndReturn(func(_ context.Context, f domain.ProductFilter, _ []string, _, _ int) ([]*domain.Product, error) {
			if !f.LowStock {
				return nil, errors.New("low_stock flag lost")
			}
			return []*domain.Product{{ID: "p1", Stock: 3}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/products?low_stock=true", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestListProducts_BadPriceBound_400(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	m.products.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodGet, "/api/products?price_gte=abc", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateOrder_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	want := &domain.Order{ID: "order-1", CustomerID: "cust-1", TotalAmount: decimal.RequireFromString("14.99")}
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(want, nil)

	body := `{"customer_id":"cust-1","product_ids":["p1","p2"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestCreateOrder_UnknownCustomer_404(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	nfErr := fmt.Errorf("%w: customer with ID ghost does not exist", domain.ErrNotFound)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nfErr)

	body := `{"customer_id":"ghost","product_ids":["p1"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetOrder_InternalError_NoDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	m.orders.EXPECT().Get(gomock.Any(), "intErr").Return(nil, errors.New("db error"))

	req := httptest.NewRequest(http.MethodGet, "/api/orders/intErr", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d, body=%s", w.Code, w.Body.String())
	}
	// внутренние детали наружу не уходят
	if strings.Contains(w.Body.String(), "db error") {
		t.Fatalf("internal details leaked: %s", w.Body.String())
	}
}

func TestListOrders_DateBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	m.orders.EXPECT().
		List(gomock.Any(), gomock.Any(), gomock.Nil(), 20, 0).
		DoAndReturn(func(_ context.Context, f domain.OrderFilter, _ []string, _, _ int) ([]*domain.Order, error) {
			if f.DateFrom == nil || f.DateTo == nil {
				return nil, errors.New("date bounds lost")
			}
			return []*domain.Order{}, nil
		})

	url := "/api/orders?order_date_gte=2026-01-01&order_date_lte=2026-02-01"
	req := httptest.NewRequest(http.MethodGet, url, http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestReportSummary_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, r := newRouter(ctrl)

	m.reports.EXPECT().Summary(gomock.Any()).Return(&domain.ReportSummary{
		Customers: 7,
		Orders:    3,
		Revenue:   decimal.RequireFromString("44.97"),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/summary", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var got domain.ReportSummary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Customers != 7 || got.Orders != 3 || got.Revenue.String() != "44.97" {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestPing_200(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, r := newRouter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestMetrics_200(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, r := newRouter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	// Содержимое может меняться — достаточно проверить, что не пусто.
	if w.Body.Len() == 0 {
		t.Fatal("metrics body is empty")
	}
}

func TestNoRoute_404(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, r := newRouter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/no-such-route", http.NoBody)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d, body=%s", w.Code, w.Body.String())
	}
}
