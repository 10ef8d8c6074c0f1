package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу ports.OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// orderOrderColumns — белый список полей сортировки списка заказов.
var orderOrderColumns = map[string]string{
	"id":           "o.id",
	"order_date":   "o.order_date",
	"total_amount": "o.total_amount",
	"created_at":   "o.created_at",
}

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// Create — транзакционно сохраняет заказ: строка заказа, связки с товарами
// (COPY) и итоговая сумма фиксируются одним коммитом, промежуточное
// состояние с нулевым итогом снаружи не видно.
func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return errors.New("order is empty or id is required")
	}
	if order.CustomerID == "" {
		return errors.New("customer_id is required")
	}
	if len(order.Products) == 0 {
		return errors.New("order must reference at least one product")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	// 1) строка заказа — итог заполняется на шаге 3.
	if _, err = transaction.Exec(ctx, `
		INSERT INTO orders (id, customer_id, order_date, total_amount, created_at)
		VALUES ($1, $2, $3, 0, $4)
	`, order.ID, order.CustomerID, order.OrderDate, order.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	// 2) связки заказ—товар через COPY (быстрее, чем INSERT в цикле).
	if err = copyOrderProducts(ctx, transaction, order.ID, order.Products); err != nil {
		return err
	}

	// 3) снимок итога.
	if _, err = transaction.Exec(ctx, `
		UPDATE orders SET total_amount = $2::numeric WHERE id = $1
	`, order.ID, order.TotalAmount.String()); err != nil {
		return fmt.Errorf("set order total: %w", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID — заказ по id вместе с набором товаров. Если не нашли, (nil, nil).
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var (
		order    domain.Order
		totalRaw string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_id, order_date, total_amount::text, created_at
		FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.CustomerID, &order.OrderDate, &totalRaw, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	if order.TotalAmount, err = decimal.NewFromString(totalRaw); err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.name, p.price::text, p.stock, p.created_at
		FROM products p
		JOIN order_products op ON op.product_id = p.id
		WHERE op.order_id = $1
		ORDER BY p.id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("select order products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		order.Products = append(order.Products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order products rows: %w", err)
	}

	return &order, nil
}

// List — фильтрованный список заказов. Предикаты по клиенту/товарам
// добавляют JOIN; при проходе через order_products выборка становится
// DISTINCT, чтобы заказ не дублировался на каждый совпавший товар.
func (r *OrderRepository) List(ctx context.Context, filter domain.OrderFilter, orderBy []string, limit, offset int) ([]*domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	orderSQL, err := buildOrderBy(orderBy, orderOrderColumns, "o.order_date DESC, o.id DESC")
	if err != nil {
		return nil, err
	}

	var b condBuilder
	joinCustomers := false
	joinProducts := false

	if filter.TotalFrom != nil {
		b.add(`o.total_amount >= $%d::numeric`, filter.TotalFrom.String())
	}
	if filter.TotalTo != nil {
		b.add(`o.total_amount <= $%d::numeric`, filter.TotalTo.String())
	}
	if filter.DateFrom != nil {
		b.add(`o.order_date >= $%d`, *filter.DateFrom)
	}
	if filter.DateTo != nil {
		b.add(`o.order_date <= $%d`, *filter.DateTo)
	}
	if filter.CustomerNameContains != "" {
		joinCustomers = true
		b.addContains("c.name", filter.CustomerNameContains)
	}
	if filter.ProductNameContains != "" {
		joinProducts = true
		b.addContains("p.name", filter.ProductNameContains)
	}
	if filter.ProductID != "" {
		joinProducts = true
		b.add(`op.product_id = $%d`, filter.ProductID)
	}

	sel := "SELECT"
	if joinProducts {
		// связь one-to-many: без DISTINCT заказ дублируется на каждый товар
		sel = "SELECT DISTINCT"
	}
	from := " FROM orders o"
	if joinCustomers {
		from += " JOIN customers c ON c.id = o.customer_id"
	}
	if joinProducts {
		from += " JOIN order_products op ON op.order_id = o.id JOIN products p ON p.id = op.product_id"
	}

	query := sel + " o.id, o.customer_id, o.order_date, o.total_amount::text, o.created_at" +
		from + b.where() +
		fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderSQL, b.next(), b.next()+1)
	args := append(b.args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0, limit)
	byID := make(map[string]*domain.Order, limit)
	ids := make([]string, 0, limit)

	for rows.Next() {
		var (
			order    domain.Order
			totalRaw string
		)
		if err := rows.Scan(&order.ID, &order.CustomerID, &order.OrderDate, &totalRaw, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if order.TotalAmount, err = decimal.NewFromString(totalRaw); err != nil {
			return nil, fmt.Errorf("parse total: %w", err)
		}
		o := order
		orders = append(orders, &o)
		byID[o.ID] = &o
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders rows: %w", err)
	}
	if len(orders) == 0 {
		return orders, nil // пустая страница
	}

	// Товары для всех заказов страницы одним запросом.
	pRows, err := r.pool.Query(ctx, `
		SELECT op.order_id, p.id, p.name, p.price::text, p.stock, p.created_at
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = ANY($1::text[])
		ORDER BY op.order_id, p.id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select page products: %w", err)
	}
	defer pRows.Close()

	for pRows.Next() {
		var (
			orderID  string
			p        domain.Product
			priceRaw string
		)
		if err := pRows.Scan(&orderID, &p.ID, &p.Name, &priceRaw, &p.Stock, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan page product: %w", err)
		}
		if p.Price, err = decimal.NewFromString(priceRaw); err != nil {
			return nil, fmt.Errorf("parse price: %w", err)
		}
		if order := byID[orderID]; order != nil {
			order.Products = append(order.Products, p)
		}
	}
	if err := pRows.Err(); err != nil {
		return nil, fmt.Errorf("page products rows: %w", err)
	}

	return orders, nil
}

// LastN — последние N заказов (для прогрева кэша).
// Подход N+1: берём только id, затем дочитываем полные заказы.
func (r *OrderRepository) LastN(ctx context.Context, n int) ([]*domain.Order, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id
		FROM orders
		ORDER BY order_date DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("select last ids: %w", err)
	}
	defer rows.Close()

	var result []*domain.Order
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan id: %w", err)
		}
		order, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if order != nil {
			result = append(result, order)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("last rows: %w", err)
	}

	return result, nil
}

// Count — общее число заказов.
func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// TotalRevenue — сумма снимков total_amount по всем заказам.
func (r *OrderRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var raw string
	if err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)::text FROM orders
	`).Scan(&raw); err != nil {
		return decimal.Zero, fmt.Errorf("sum revenue: %w", err)
	}
	revenue, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse revenue: %w", err)
	}
	return revenue, nil
}

// copyOrderProducts — вставка связок через COPY (CopyFromRows).
func copyOrderProducts(ctx context.Context, tx pgx.Tx, orderID string, products []domain.Product) error {
	rows := make([][]any, 0, len(products))
	for i := range products {
		rows = append(rows, []any{orderID, products[i].ID})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_products"},
		[]string{"order_id", "product_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy order products: %w", err)
	}
	return nil
}
