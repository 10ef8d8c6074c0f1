package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
	"github.com/Gunvolt24/crm_backend/pkg/metrics"
)

// Проверка, что CustomerService удовлетворяет интерфейсу ports.CustomerService.
var _ ports.CustomerService = (*CustomerService)(nil)

// CustomerService — прикладная логика работы с клиентами (без знаний о транспорте).
type CustomerService struct {
	repo      ports.CustomerRepository
	validator ports.CustomerValidator
	log       ports.Logger
}

// NewCustomerService — DI-конструктор.
func NewCustomerService(repo ports.CustomerRepository, validator ports.CustomerValidator, log ports.Logger) *CustomerService {
	return &CustomerService{repo: repo, validator: validator, log: log}
}

// Create — создать клиента: валидация входа, затем вставка.
// Дубликат email приходит из репозитория уже как domain.ErrValidation.
func (s *CustomerService) Create(ctx context.Context, in domain.CreateCustomerInput) (*domain.Customer, error) {
	if err := s.validator.Validate(ctx, &in); err != nil {
		s.log.Warnf(ctx, "customer validation failed email=%s err=%v", in.Email, err)
		return nil, err
	}

	customer := &domain.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			s.log.Warnf(ctx, "customer rejected email=%s err=%v", in.Email, err)
			return nil, err
		}
		s.log.Errorf(ctx, "repo.Create customer failed email=%s err=%v", in.Email, err)
		return nil, err
	}

	metrics.CustomersCreated.Inc()
	s.log.Infof(ctx, "customer created id=%s", customer.ID)
	return customer, nil
}

// BulkCreate — пакетное создание с пер-строчной изоляцией ошибок:
// упавшая строка попадает в список ошибок ("Row N: ...", нумерация с 1)
// и не блокирует остальные; уже созданные записи не откатываются.
func (s *CustomerService) BulkCreate(ctx context.Context, ins []domain.CreateCustomerInput) (*domain.BulkCreateResult, error) {
	result := &domain.BulkCreateResult{
		Customers: make([]*domain.Customer, 0, len(ins)),
		Errors:    []string{},
	}

	for idx := range ins {
		customer, err := s.Create(ctx, ins[idx])
		if err != nil {
			// порядковый номер строки — с единицы
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", idx+1, rowErrorMessage(err)))
			metrics.BulkRowsFailed.Inc()
			continue
		}
		result.Customers = append(result.Customers, customer)
	}

	result.Success = len(result.Errors) == 0
	s.log.Infof(ctx, "bulk create done created=%d failed=%d", len(result.Customers), len(result.Errors))
	return result, nil
}

// Get — клиент по id; (nil, nil), если записи нет.
func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// List — проксирование в репозиторий (пагинация уже валидирована на верхнем уровне).
func (s *CustomerService) List(ctx context.Context, filter domain.CustomerFilter, orderBy []string, limit, offset int) ([]*domain.Customer, error) {
	return s.repo.List(ctx, filter, orderBy, limit, offset)
}

// rowErrorMessage — человекочитаемая причина для списка ошибок пакета:
// у ошибок валидации отбрасываем префикс sentinel-ошибки.
func rowErrorMessage(err error) string {
	if errors.Is(err, domain.ErrValidation) {
		msg := err.Error()
		prefix := domain.ErrValidation.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return err.Error()
}
