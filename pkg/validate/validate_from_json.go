package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
)

// ValidateCustomerFromJSON — строгий парсинг одной записи импорта
// (DisallowUnknownFields) плюс доменная валидация.
func ValidateCustomerFromJSON(ctx context.Context, validator ports.CustomerValidator, raw []byte) (*domain.CreateCustomerInput, error) {
	var in domain.CreateCustomerInput

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}

	if err := validator.Validate(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}
