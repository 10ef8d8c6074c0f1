package jobs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileLog — журнал задачи: строки дописываются в конец файла.
// Файл открывается на каждую запись, чтобы ротация извне не ломала журнал.
type FileLog struct {
	mu   sync.Mutex
	path string
}

// NewFileLog — журнал в каталоге dir с именем name; каталог создаётся.
func NewFileLog(dir, name string) (*FileLog, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return &FileLog{path: filepath.Join(dir, name)}, nil
}

// Append — дописывает строки в журнал; каждая строка завершается \n.
func (l *FileLog) Append(lines ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	for _, line := range lines {
		if _, err := fmt.Fprintln(f, line); err != nil {
			return err
		}
	}
	return nil
}
