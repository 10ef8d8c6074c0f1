package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
)

// Проверка, что CustomerRepository удовлетворяет интерфейсу ports.CustomerRepository.
var _ ports.CustomerRepository = (*CustomerRepository)(nil)

// pgUniqueViolation — код ошибки unique_violation в Postgres.
const pgUniqueViolation = "23505"

// customerOrderColumns — белый список полей сортировки списка клиентов.
var customerOrderColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

// CustomerRepository — реализация репозитория клиентов на Postgres (pgxpool).
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository — конструктор CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create — вставка клиента. Нарушение уникальности email транслируется
// в domain.ErrValidation, чтобы слой выше не знал о кодах Postgres.
func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	if customer == nil || customer.ID == "" {
		return errors.New("customer is empty or id is required")
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO customers (id, name, email, phone, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
	`, customer.ID, customer.Name, customer.Email, customer.Phone, customer.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: a customer with this email already exists", domain.ErrValidation)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID — клиент по id. Если не нашли, возвращает (nil, nil).
func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, COALESCE(phone, ''), created_at
		FROM customers WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select customer: %w", err)
	}
	return &c, nil
}

// List — фильтрованный список клиентов: заданные предикаты объединяются
// через AND, отсутствующие не участвуют.
func (r *CustomerRepository) List(ctx context.Context, filter domain.CustomerFilter, orderBy []string, limit, offset int) ([]*domain.Customer, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	orderSQL, err := buildOrderBy(orderBy, customerOrderColumns, "created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}

	var b condBuilder
	if filter.NameContains != "" {
		b.addContains("name", filter.NameContains)
	}
	if filter.EmailContains != "" {
		b.addContains("email", filter.EmailContains)
	}
	if filter.CreatedFrom != nil {
		b.add(`created_at >= $%d`, *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		b.add(`created_at <= $%d`, *filter.CreatedTo)
	}
	if filter.PhonePrefix != "" {
		b.addPrefix("phone", filter.PhonePrefix)
	}

	query := `
		SELECT id, name, email, COALESCE(phone, ''), created_at
		FROM customers` + b.where() +
		fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderSQL, b.next(), b.next()+1)
	args := append(b.args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0, limit)
	for rows.Next() {
		c := &domain.Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("customers rows: %w", err)
	}
	return customers, nil
}

// Count — общее число клиентов.
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}
