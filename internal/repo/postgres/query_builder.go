package postgres

import (
	"fmt"
	"strings"

	"github.com/Gunvolt24/crm_backend/internal/domain"
)

// condBuilder — накапливает WHERE-условия с позиционными аргументами.
// Каждый вызов add подставляет номер следующего плейсхолдера в expr
// (expr содержит ровно один %d).
type condBuilder struct {
	conds []string
	args  []any
}

func (b *condBuilder) add(expr string, val any) {
	b.args = append(b.args, val)
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)))
}

// addStatic — условие без аргументов (например, фиксированный порог).
func (b *condBuilder) addStatic(expr string) {
	b.conds = append(b.conds, expr)
}

// likeReplacer — экранирование метасимволов LIKE; без него "%"/"_"
// в значении фильтра работали бы как шаблон.
var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likeEscape(s string) string { return likeReplacer.Replace(s) }

// addContains — подстрочный фильтр без учёта регистра.
func (b *condBuilder) addContains(col, val string) {
	b.add(col+` ILIKE '%%' || $%d || '%%'`, likeEscape(val))
}

// addPrefix — префиксный фильтр с учётом регистра.
func (b *condBuilder) addPrefix(col, val string) {
	b.add(col+` LIKE $%d || '%%'`, likeEscape(val))
}

// where — готовая WHERE-часть (пустая строка, если условий нет).
func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// next — номер следующего плейсхолдера (для LIMIT/OFFSET после add).
func (b *condBuilder) next() int { return len(b.args) + 1 }

// buildOrderBy — собирает ORDER BY из списка полей запроса.
// Ведущий минус у имени — сортировка по убыванию. Поля проверяются по белому
// списку; неизвестное поле — ошибка валидации.
func buildOrderBy(fields []string, allowed map[string]string, fallback string) (string, error) {
	if len(fields) == 0 {
		return fallback, nil
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		dir := "ASC"
		name := f
		if strings.HasPrefix(f, "-") {
			dir = "DESC"
			name = strings.TrimPrefix(f, "-")
		}
		col, ok := allowed[name]
		if !ok {
			return "", fmt.Errorf("%w: unknown order_by field %q", domain.ErrValidation, name)
		}
		parts = append(parts, col+" "+dir)
	}
	return strings.Join(parts, ", "), nil
}
