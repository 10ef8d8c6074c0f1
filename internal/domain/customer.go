package domain

import "time"

// Customer — клиент CRM. Email глобально уникален (ограничение БД),
// телефон опционален и проверяется по фиксированному шаблону.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerFilter — белый список необязательных предикатов списка клиентов.
// Отсутствующий предикат (нулевое значение / nil) — no-op; все заданные
// объединяются через AND.
type CustomerFilter struct {
	NameContains  string     // подстрока имени, без учёта регистра
	EmailContains string     // подстрока email, без учёта регистра
	CreatedFrom   *time.Time // created_at >=
	CreatedTo     *time.Time // created_at <=
	PhonePrefix   string     // телефон начинается с
}
