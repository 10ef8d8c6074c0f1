package domain

import "errors"

// Базовые (sentinel) ошибки доменного слоя.
// Конкретная причина оборачивается через fmt.Errorf("%w: ..."),
// вызывающие стороны ветвятся по errors.Is.
var (
	// ErrValidation — нарушение бизнес-правила на поле или записи
	// (дубликат email, неверный формат телефона, неположительная цена и т.п.).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound — ссылка на несуществующего клиента/товар.
	ErrNotFound = errors.New("not found")
)
