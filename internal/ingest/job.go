package ingest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"coinwatch-api/internal/cache"
	"coinwatch-api/pkg/feed"
	"coinwatch-api/pkg/journal"
)

// Source fetches current quotes for a set of feed symbols.
type Source interface {
	Quotes(ctx context.Context, ids []string) (map[string]feed.Quote, error)
}

// Store persists one accepted quote, creating the asset row when needed.
type Store interface {
	SaveQuote(ctx context.Context, symbol string, quote feed.Quote) (int64, error)
}

// Cache drops stale cached reads after a persist. Satisfied by the go-zero
// redis client.
type Cache interface {
	DelCtx(ctx context.Context, keys ...string) (int, error)
}

// CycleResult summarises one ingestion pass over the configured symbols.
type CycleResult struct {
	Requested []string
	Persisted []string
	Missing   []string
	Skipped   map[string][]feed.Violation
	Duration  time.Duration
}

// Job runs fetch, validate, persist cycles over a fixed symbol set.
// A quote that fails validation is skipped without failing the cycle; feed
// and storage errors abort it.
type Job struct {
	source  Source
	store   Store
	symbols []string
	journal *journal.Writer
	cache   Cache
	nowFn   func() time.Time
}

// Option configures optional job behaviour.
type Option func(*Job)

// WithJournal records every cycle to the given journal writer.
func WithJournal(w *journal.Writer) Option {
	return func(j *Job) {
		j.journal = w
	}
}

// WithCache invalidates cached latest prices for each persisted symbol so
// readers never serve a quote older than the cycle that just ran.
func WithCache(c Cache) Option {
	return func(j *Job) {
		j.cache = c
	}
}

// WithClock replaces the validation clock (for tests).
func WithClock(now func() time.Time) Option {
	return func(j *Job) {
		j.nowFn = now
	}
}

// NewJob builds an ingestion job over the given source and store.
func NewJob(source Source, store Store, symbols []string, opts ...Option) *Job {
	j := &Job{
		source:  source,
		store:   store,
		symbols: symbols,
		nowFn:   time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// RunCycle executes one fetch/validate/persist pass. The returned result is
// valid even when err is non-nil: it reflects whatever completed before the
// failure.
func (j *Job) RunCycle(ctx context.Context) (*CycleResult, error) {
	start := j.nowFn()
	result := &CycleResult{
		Requested: append([]string(nil), j.symbols...),
		Skipped:   map[string][]feed.Violation{},
	}

	quotes, err := j.source.Quotes(ctx, j.symbols)
	if err != nil {
		result.Duration = j.nowFn().Sub(start)
		j.record(result, err)
		return result, fmt.Errorf("ingest: fetch quotes: %w", err)
	}

	for _, symbol := range result.Requested {
		quote, ok := quotes[symbol]
		if !ok {
			result.Missing = append(result.Missing, symbol)
			logx.WithContext(ctx).Slowf("ingest: feed returned no quote for %s", symbol)
			continue
		}

		if violations := feed.Validate(quote, j.nowFn()); len(violations) > 0 {
			result.Skipped[symbol] = violations
			logx.WithContext(ctx).Slowf("ingest: skipping %s: %d validation failure(s)", symbol, len(violations))
			continue
		}

		if _, err := j.store.SaveQuote(ctx, symbol, quote); err != nil {
			// Symbols persisted before the failure already changed the
			// store; their cached reads must not outlive the cycle.
			j.invalidate(ctx, result.Persisted)
			result.Duration = j.nowFn().Sub(start)
			j.record(result, err)
			return result, fmt.Errorf("ingest: persist %s: %w", symbol, err)
		}
		result.Persisted = append(result.Persisted, symbol)
	}

	j.invalidate(ctx, result.Persisted)

	result.Duration = j.nowFn().Sub(start)
	j.record(result, nil)
	logx.WithContext(ctx).Infof("ingest: cycle done, persisted=%d skipped=%d missing=%d duration=%s",
		len(result.Persisted), len(result.Skipped), len(result.Missing), result.Duration)
	return result, nil
}

// invalidate drops cached latest prices for every symbol this cycle wrote.
func (j *Job) invalidate(ctx context.Context, persisted []string) {
	if j.cache == nil || len(persisted) == 0 {
		return
	}
	keys := make([]string, 0, len(persisted)+1)
	for _, symbol := range persisted {
		keys = append(keys, cache.PriceLatestKey(symbol))
	}
	keys = append(keys, cache.PricesBundleKey())
	if _, err := j.cache.DelCtx(ctx, keys...); err != nil {
		logx.WithContext(ctx).Errorf("ingest: invalidate cache: %v", err)
	}
}

func (j *Job) record(result *CycleResult, cycleErr error) {
	if j.journal == nil {
		return
	}

	rec := &journal.CycleRecord{
		Requested:  result.Requested,
		Persisted:  result.Persisted,
		Missing:    result.Missing,
		DurationMs: result.Duration.Milliseconds(),
		Success:    cycleErr == nil,
	}
	if cycleErr != nil {
		rec.ErrorMessage = cycleErr.Error()
	}
	if len(result.Skipped) > 0 {
		rec.Skipped = make(map[string][]string, len(result.Skipped))
		for symbol, violations := range result.Skipped {
			codes := make([]string, 0, len(violations))
			for _, v := range violations {
				codes = append(codes, string(v))
			}
			sort.Strings(codes)
			rec.Skipped[symbol] = codes
		}
	}

	if _, err := j.journal.WriteCycle(rec); err != nil {
		logx.Errorf("ingest: write journal: %v", err)
	}
}
