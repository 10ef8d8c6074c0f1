package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
	"github.com/Gunvolt24/crm_backend/pkg/metrics"
)

// Проверка, что OrderService удовлетворяет интерфейсу ports.OrderService.
var _ ports.OrderService = (*OrderService)(nil)

// OrderService — прикладная логика работы с заказами.
type OrderService struct {
	orders    ports.OrderRepository
	customers ports.CustomerRepository
	products  ports.ProductRepository
	cache     ports.OrderCache
	publisher ports.EventPublisher
	log       ports.Logger
}

// NewOrderService — DI-конструктор.
func NewOrderService(
	orders ports.OrderRepository,
	customers ports.CustomerRepository,
	products ports.ProductRepository,
	cache ports.OrderCache,
	publisher ports.EventPublisher,
	log ports.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		customers: customers,
		products:  products,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

// Create — создать заказ. Шаги:
//  1. клиент обязан существовать (иначе domain.ErrNotFound);
//  2. каждый товар обязан существовать; ошибка называет первый отсутствующий id;
//  3. нужен хотя бы один товар (domain.ErrValidation);
//  4. итог — точная decimal-сумма цен разрешённых товаров на момент создания
//     (снимок: последующие изменения цен заказ не трогают), запись транзакционная.
//
// После коммита заказ кладётся в кэш и публикуется событие order-created
// (fire-and-forget: сбой публикации не откатывает заказ).
func (s *OrderService) Create(ctx context.Context, in domain.CreateOrderInput) (*domain.Order, error) {
	customer, err := s.customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		s.log.Errorf(ctx, "customers.GetByID failed id=%s err=%v", in.CustomerID, err)
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer with ID %s does not exist", domain.ErrNotFound, in.CustomerID)
	}

	// набор ссылок: дубликаты id схлопываются с сохранением порядка
	resolved := make([]domain.Product, 0, len(in.ProductIDs))
	seen := make(map[string]struct{}, len(in.ProductIDs))
	for _, productID := range in.ProductIDs {
		if _, ok := seen[productID]; ok {
			continue
		}
		seen[productID] = struct{}{}

		product, err := s.products.GetByID(ctx, productID)
		if err != nil {
			s.log.Errorf(ctx, "products.GetByID failed id=%s err=%v", productID, err)
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: product with ID %s does not exist", domain.ErrNotFound, productID)
		}
		resolved = append(resolved, *product)
	}

	if len(resolved) == 0 {
		return nil, fmt.Errorf("%w: at least one product is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	orderDate := now
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}

	order := &domain.Order{
		ID:          uuid.New().String(),
		CustomerID:  customer.ID,
		Products:    resolved,
		OrderDate:   orderDate,
		TotalAmount: domain.SumPrices(resolved),
		CreatedAt:   now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Errorf(ctx, "orders.Create failed id=%s err=%v", order.ID, err)
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if setErr := s.cache.Set(ctx, order); setErr != nil {
		s.log.Warnf(ctx, "cache.Set failed order=%s err=%v", order.ID, setErr)
	}
	if pubErr := s.publisher.OrderCreated(ctx, order); pubErr != nil {
		s.log.Warnf(ctx, "publish order-created failed order=%s err=%v", order.ID, pubErr)
	}

	metrics.OrdersCreated.Inc()
	s.log.Infof(ctx, "order created id=%s customer=%s products=%d total=%s",
		order.ID, order.CustomerID, len(order.Products), order.TotalAmount)
	return order, nil
}

// Get — заказ по id: сначала из кэша, при промахе — из БД с записью в кэш.
// Возвращает (*Order, nil) или (nil, nil), если записи нет.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	if order, found := s.cache.Get(ctx, id); found {
		s.log.Infof(ctx, "cache hit for order=%s", id)
		return order, nil
	}
	s.log.Infof(ctx, "cache miss for order=%s", id)

	start := time.Now()
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "orders.GetByID failed id=%s err=%v", id, err)
		return nil, err
	}

	if order != nil {
		if setErr := s.cache.Set(ctx, order); setErr != nil {
			s.log.Warnf(ctx, "cache.Set failed order=%s err=%v", id, setErr)
		}
	}

	s.log.Infof(ctx, "db fetch order=%s took=%s", id, time.Since(start))
	return order, nil
}

// List — проксирование в репозиторий.
func (s *OrderService) List(ctx context.Context, filter domain.OrderFilter, orderBy []string, limit, offset int) ([]*domain.Order, error) {
	return s.orders.List(ctx, filter, orderBy, limit, offset)
}

// WarmUpCache — прогрев кэша последними N заказами из БД.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *OrderService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.orders.LastN(ctx, n)
	if err != nil {
		s.log.Errorf(ctx, "orders.LastN failed n=%d err=%v", n, err)
		return err
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d orders in %s", len(list), time.Since(start))
	return nil
}
