package usecase

import (
	"context"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
)

// Проверка, что ReportService удовлетворяет интерфейсу ports.ReportService.
var _ ports.ReportService = (*ReportService)(nil)

// ReportService — сводные агрегаты CRM (для еженедельного отчёта).
type ReportService struct {
	customers ports.CustomerRepository
	orders    ports.OrderRepository
	log       ports.Logger
}

// NewReportService — DI-конструктор.
func NewReportService(customers ports.CustomerRepository, orders ports.OrderRepository, log ports.Logger) *ReportService {
	return &ReportService{customers: customers, orders: orders, log: log}
}

// Summary — число клиентов, число заказов и суммарная выручка.
func (s *ReportService) Summary(ctx context.Context) (*domain.ReportSummary, error) {
	customers, err := s.customers.Count(ctx)
	if err != nil {
		s.log.Errorf(ctx, "customers.Count failed err=%v", err)
		return nil, err
	}
	orders, err := s.orders.Count(ctx)
	if err != nil {
		s.log.Errorf(ctx, "orders.Count failed err=%v", err)
		return nil, err
	}
	revenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		s.log.Errorf(ctx, "orders.TotalRevenue failed err=%v", err)
		return nil, err
	}

	return &domain.ReportSummary{
		Customers: customers,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}
