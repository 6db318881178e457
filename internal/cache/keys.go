package cache

import (
	"fmt"
	"strings"
	"time"

	"coinwatch-api/internal/config"
)

// Namespace is the Redis key prefix for the coinwatch application.
const Namespace = "coinwatch"

// TTLClass represents a config-driven TTL bucket.
type TTLClass string

const (
	TTLShort  TTLClass = "short"
	TTLMedium TTLClass = "medium"
	TTLLong   TTLClass = "long"
)

// TTLSet normalises cache TTLs from config into time.Duration values.
type TTLSet struct {
	Short  time.Duration
	Medium time.Duration
	Long   time.Duration
}

// NewTTLSet converts config TTLs (in seconds) into durations.
func NewTTLSet(cfg config.CacheTTL) TTLSet {
	return TTLSet{
		Short:  durationOrDefault(cfg.Short, 10*time.Second),
		Medium: durationOrDefault(cfg.Medium, time.Minute),
		Long:   durationOrDefault(cfg.Long, 5*time.Minute),
	}
}

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds < 0 {
		return 0
	}
	if seconds == 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}

// Duration returns the configured duration for the given TTL class.
func (t TTLSet) Duration(class TTLClass) time.Duration {
	switch class {
	case TTLShort:
		return t.Short
	case TTLMedium:
		return t.Medium
	case TTLLong:
		return t.Long
	default:
		return 0
	}
}

// Scaled applies a multiplier to a TTL class, useful for half/double TTL variants.
func (t TTLSet) Scaled(class TTLClass, factor float64) time.Duration {
	base := t.Duration(class)
	if base <= 0 || factor <= 0 {
		return base
	}
	return time.Duration(float64(base) * factor)
}

func formatKey(parts ...string) string {
	values := make([]string, 0, len(parts)+1)
	values = append(values, Namespace)
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		values = append(values, clean)
	}
	return strings.Join(values, ":")
}

// --- Price Keys -------------------------------------------------------------

// PriceLatestKey returns the latest snapshot key for one symbol.
func PriceLatestKey(symbol string) string {
	return formatKey("price", "latest", symbol)
}

// PricesBundleKey holds the aggregated latest-prices map payload.
func PricesBundleKey() string {
	return formatKey("prices", "bundle")
}

// --- Asset Keys -------------------------------------------------------------

// AssetSummaryPageKey caches one rendered summary page.
func AssetSummaryPageKey(page, pageSize int) string {
	return formatKey("summary", "page", fmt.Sprintf("%d_%d", page, pageSize))
}

// --- Analysis Keys ----------------------------------------------------------

// AnalysisKey caches a generated per-asset analysis text.
func AnalysisKey(symbol string) string {
	return formatKey("analysis", symbol)
}

// PortfolioPlanKey caches a generated portfolio plan for a budget.
func PortfolioPlanKey(budget string) string {
	return formatKey("analysis", "portfolio", budget)
}

// --- Ingest Keys ------------------------------------------------------------

// IngestLockKey is used as a short-lived lock so overlapping cycles do not
// double-fetch the feed.
func IngestLockKey() string {
	return formatKey("lock", "ingest")
}

// --- TTL Helpers ------------------------------------------------------------

// PriceTTL returns short-lived TTL for individual price keys.
func PriceTTL(ttl TTLSet) time.Duration {
	return ttl.Duration(TTLShort)
}

// PricesBundleTTL returns the TTL for the bundled price payload.
func PricesBundleTTL(ttl TTLSet) time.Duration {
	return ttl.Duration(TTLShort)
}

// SummaryPageTTL returns the TTL for rendered summary pages.
func SummaryPageTTL(ttl TTLSet) time.Duration {
	return ttl.Duration(TTLMedium)
}

// AnalysisTTL returns the TTL for generated analysis payloads.
func AnalysisTTL(ttl TTLSet) time.Duration {
	return ttl.Scaled(TTLLong, 2) // target ~600s when long=300s
}

// IngestLockTTL returns the TTL for the cycle lock.
func IngestLockTTL(ttl TTLSet) time.Duration {
	return ttl.Scaled(TTLShort, 0.5) // target ~5s when short=10s
}
