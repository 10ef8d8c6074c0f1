package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
)

// JSONLResult — статистика валидации потока JSONL.
// Errors — диагностика по невалидным строкам в формате bulkCreateCustomers
// ("Row N: причина", нумерация непустых строк с единицы).
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
	Errors            []string
}

// ValidateJSONLStream — читает JSONL из reader'а, валидирует каждую строку
// по правилам bulkCreateCustomers; валидные пишет канонической JSON-строкой
// в writer, невалидные попадают в список ошибок и не блокируют остальные.
// Пустые строки игнорируются.
func ValidateJSONLStream(ctx context.Context, validator ports.CustomerValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	// запас на большие строки
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	row := 0
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(strings.TrimSpace(string(lineBytes))) == 0 {
			continue
		}
		row++

		in, err := ValidateCustomerFromJSON(ctx, validator, lineBytes)
		if err != nil {
			res.InvalidLinesCount++
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %s", row, lineErrorMessage(err)))
			continue
		}

		marshal, _ := json.Marshal(in)
		if _, err := ow.Write(marshal); err != nil {
			return res, fmt.Errorf("write valid line: %w", err)
		}
		if _, err := ow.Write([]byte("\n")); err != nil {
			return res, fmt.Errorf("write newline: %w", err)
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// lineErrorMessage — человекочитаемая причина для списка ошибок:
// у ошибок валидации отбрасываем префикс sentinel-ошибки.
func lineErrorMessage(err error) string {
	if errors.Is(err, domain.ErrValidation) {
		msg := err.Error()
		prefix := domain.ErrValidation.Error() + ": "
		if strings.HasPrefix(msg, prefix) && len(msg) > len(prefix) {
			return msg[len(prefix):]
		}
	}
	return err.Error()
}
