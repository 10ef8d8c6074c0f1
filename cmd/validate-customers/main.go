package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/crm_backend/pkg/validate"
)

// CLI-приложение для офлайн-валидации файлов импорта клиентов.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	customerValidator := validate.NewCustomerValidator()

	format := validate.InputFormat(*formatStr)
	path := *inputPath

	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == validate.FormatAuto {
			format = validate.FormatJSONL
		}
	}

	summary, err := validate.ValidateFile(ctx, customerValidator, path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	// первая строка сводки — счётчики, дальше — пер-строчная диагностика
	fmt.Fprintf(os.Stderr, "validation done\n%s\n", summary)
}
