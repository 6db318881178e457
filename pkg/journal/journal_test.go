package journal

import (
	"encoding/json"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteCycle_SequencesRecords(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	w.nowFn = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	first, err := w.WriteCycle(&CycleRecord{Persisted: []string{"bitcoin"}, Success: true})
	assert.NoError(t, err)
	second, err := w.WriteCycle(&CycleRecord{Success: true})
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	data, err := os.ReadFile(second)
	assert.NoError(t, err)
	var rec CycleRecord
	assert.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, 2, rec.CycleNumber)
}

func TestWriteCycle_NilRecordRejected(t *testing.T) {
	w := NewWriter(t.TempDir())
	_, err := w.WriteCycle(nil)
	assert.Error(t, err)
}

func TestWriteCycle_ConcurrentWritersDoNotCollide(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	const writers = 8
	var wg sync.WaitGroup
	paths := make([]string, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path, err := w.WriteCycle(&CycleRecord{Success: true})
			assert.NoError(t, err)
			paths[i] = path
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, p := range paths {
		assert.False(t, seen[p], "duplicate journal file %s", p)
		seen[p] = true
	}

	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, writers, "every cycle must land in its own file")

	numbers := map[int]bool{}
	for _, entry := range entries {
		data, err := os.ReadFile(dir + "/" + entry.Name())
		assert.NoError(t, err)
		var rec CycleRecord
		assert.NoError(t, json.Unmarshal(data, &rec))
		assert.False(t, numbers[rec.CycleNumber], "duplicate cycle number %d", rec.CycleNumber)
		numbers[rec.CycleNumber] = true
	}
}
