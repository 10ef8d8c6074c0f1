package validate

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
)

// Проверка, что CustomerValidator удовлетворяет интерфейсу ports.CustomerValidator.
var _ ports.CustomerValidator = (*CustomerValidator)(nil)

// phonePattern — допустимые формы: "+1234567890", "123-456-7890";
// разделители — дефис, точка или пробел.
var phonePattern = regexp.MustCompile(`^\+?\d{0,3}[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}$`)

// CustomerValidator — проверка входа createCustomer/bulkCreateCustomers.
// Любая проблема — ошибка, оборачивающая domain.ErrValidation.
type CustomerValidator struct{}

// NewCustomerValidator — конструктор CustomerValidator.
func NewCustomerValidator() *CustomerValidator { return &CustomerValidator{} }

// Validate — проверяет имя, email и (если задан) телефон.
func (v *CustomerValidator) Validate(_ context.Context, in *domain.CreateCustomerInput) error {
	if in == nil {
		return fmt.Errorf("%w: input is required", domain.ErrValidation)
	}
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.Email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	if in.Phone != "" && !phonePattern.MatchString(in.Phone) {
		return fmt.Errorf("%w: invalid phone format. Use '+1234567890' or '123-456-7890'", domain.ErrValidation)
	}
	return nil
}
