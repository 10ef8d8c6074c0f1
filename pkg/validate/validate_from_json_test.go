package validate

import (
	"context"
	"strings"
	"testing"
)

func TestValidateCustomerFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewCustomerValidator()

	raw := customerJSON("Alice", "alice@example.com", "+1234567890")

	in, err := ValidateCustomerFromJSON(ctx, validator, []byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Name != "Alice" || in.Email != "alice@example.com" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestValidateCustomerFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewCustomerValidator()

	raw := `{"unknown":"x","name":"Alice","email":"alice@example.com"}`
	_, err := ValidateCustomerFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
}

func TestValidateCustomerFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewCustomerValidator()

	raw := customerJSON("Bob", "bob@example.com", "") + "{}"
	_, err := ValidateCustomerFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateCustomerFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	validator := NewCustomerValidator()

	// Не валиден: телефон в неподдерживаемом формате.
	raw := customerJSON("Carol", "carol@example.com", "abc")
	_, err := ValidateCustomerFromJSON(ctx, validator, []byte(raw))
	if err == nil {
		t.Fatalf("expected domain validation error, got nil")
	}
}

// ---- helpers ----

func customerJSON(name, email, phone string) string {
	if phone == "" {
		return `{"name":"` + name + `","email":"` + email + `"}`
	}
	return `{"name":"` + name + `","email":"` + email + `","phone":"` + phone + `"}`
}
