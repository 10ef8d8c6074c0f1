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

// Проверка, что ProductRepository удовлетворяет интерфейсу ports.ProductRepository.
var _ ports.ProductRepository = (*ProductRepository)(nil)

// productOrderColumns — белый список полей сортировки списка товаров.
var productOrderColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"price":      "price",
	"stock":      "stock",
	"created_at": "created_at",
}

// ProductRepository — реализация репозитория товаров на Postgres (pgxpool).
// Цены ходят через текст: NUMERIC ни при чтении, ни при записи
// не проходит через float64, снимок суммы остаётся точным.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository — конструктор ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// Create — вставка товара.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if product == nil || product.ID == "" {
		return errors.New("product is empty or id is required")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO products (id, name, price, stock, created_at)
		VALUES ($1, $2, $3::numeric, $4, $5)
	`, product.ID, product.Name, product.Price.String(), product.Stock, product.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID — товар по id. Если не нашли, возвращает (nil, nil).
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var (
		p        domain.Product
		priceRaw string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, price::text, stock, created_at
		FROM products WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &priceRaw, &p.Stock, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	if p.Price, err = decimal.NewFromString(priceRaw); err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	return &p, nil
}

// List — фильтрованный список товаров.
func (r *ProductRepository) List(ctx context.Context, filter domain.ProductFilter, orderBy []string, limit, offset int) ([]*domain.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	orderSQL, err := buildOrderBy(orderBy, productOrderColumns, "created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}

	var b condBuilder
	if filter.NameContains != "" {
		b.addContains("name", filter.NameContains)
	}
	if filter.PriceFrom != nil {
		b.add(`price >= $%d::numeric`, filter.PriceFrom.String())
	}
	if filter.PriceTo != nil {
		b.add(`price <= $%d::numeric`, filter.PriceTo.String())
	}
	if filter.StockFrom != nil {
		b.add(`stock >= $%d`, *filter.StockFrom)
	}
	if filter.StockTo != nil {
		b.add(`stock <= $%d`, *filter.StockTo)
	}
	if filter.LowStock {
		b.addStatic(fmt.Sprintf("stock < %d", domain.LowStockThreshold))
	}

	query := `
		SELECT id, name, price::text, stock, created_at
		FROM products` + b.where() +
		fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderSQL, b.next(), b.next()+1)
	args := append(b.args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	return products, nil
}

// RestockBelow — одним UPDATE прибавляет increment всем товарам
// со stock < threshold и возвращает обновлённые записи.
func (r *ProductRepository) RestockBelow(ctx context.Context, threshold, increment int) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE products
		SET stock = stock + $2
		WHERE stock < $1
		RETURNING id, name, price::text, stock, created_at
	`, threshold, increment)
	if err != nil {
		return nil, fmt.Errorf("restock products: %w", err)
	}
	defer rows.Close()

	var updated []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		updated = append(updated, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("restock rows: %w", err)
	}
	return updated, nil
}

// scanProduct — чтение одной строки товара (цена через текст).
func scanProduct(rows pgx.Rows) (*domain.Product, error) {
	var (
		p        domain.Product
		priceRaw string
	)
	if err := rows.Scan(&p.ID, &p.Name, &priceRaw, &p.Stock, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	price, err := decimal.NewFromString(priceRaw)
	if err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	p.Price = price
	return &p, nil
}
