package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// CycleRecord captures one end-to-end ingestion cycle for audit.
type CycleRecord struct {
	Timestamp    time.Time           `json:"timestamp"`
	CycleNumber  int                 `json:"cycle_number"`
	Requested    []string            `json:"requested,omitempty"`
	Persisted    []string            `json:"persisted,omitempty"`
	Skipped      map[string][]string `json:"skipped,omitempty"`
	Missing      []string            `json:"missing,omitempty"`
	DurationMs   int64               `json:"duration_ms"`
	Success      bool                `json:"success"`
	ErrorMessage string              `json:"error_message,omitempty"`
}

// Writer persists cycle records to a directory as JSON files (journal style).
// Safe for concurrent use; one writer instance is shared by every ingest path.
type Writer struct {
	dir   string
	nowFn func() time.Time

	mu  sync.Mutex
	seq int
}

// NewWriter constructs a journal writer.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "journal"
	}
	_ = os.MkdirAll(dir, 0o755)
	return &Writer{dir: dir, nowFn: time.Now}
}

// WriteCycle writes a cycle record to a timestamped JSON file.
func (w *Writer) WriteCycle(rec *CycleRecord) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("journal: nil record")
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = w.nowFn()
	}

	w.mu.Lock()
	w.seq++
	seq := w.seq
	w.mu.Unlock()

	rec.CycleNumber = seq
	name := fmt.Sprintf("cycle_%s_%05d.json", rec.Timestamp.UTC().Format("20060102_150405"), seq)
	path := filepath.Join(w.dir, name)
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
