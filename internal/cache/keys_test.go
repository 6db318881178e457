package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"coinwatch-api/internal/config"
)

func testTTLSet() TTLSet {
	return NewTTLSet(config.CacheTTL{Short: 10, Medium: 60, Long: 300})
}

func TestKeyShapes(t *testing.T) {
	assert.Equal(t, "coinwatch:price:latest:bitcoin", PriceLatestKey("bitcoin"))
	assert.Equal(t, "coinwatch:prices:bundle", PricesBundleKey())
	assert.Equal(t, "coinwatch:summary:page:2_10", AssetSummaryPageKey(2, 10))
	assert.Equal(t, "coinwatch:analysis:bitcoin", AnalysisKey("bitcoin"))
	assert.Equal(t, "coinwatch:analysis:portfolio:500.00", PortfolioPlanKey("500.00"))
	assert.Equal(t, "coinwatch:lock:ingest", IngestLockKey())
}

func TestKeyShapes_BlankPartsDropped(t *testing.T) {
	assert.Equal(t, "coinwatch:price:latest", PriceLatestKey("  "))
}

func TestTTLHelpers(t *testing.T) {
	ttl := testTTLSet()
	assert.Equal(t, 10*time.Second, PriceTTL(ttl))
	assert.Equal(t, 10*time.Second, PricesBundleTTL(ttl))
	assert.Equal(t, time.Minute, SummaryPageTTL(ttl))
	assert.Equal(t, 10*time.Minute, AnalysisTTL(ttl), "analysis text outlives the long class")
	assert.Equal(t, 5*time.Second, IngestLockTTL(ttl), "lock expires well before a hung cycle would")
}

func TestNewTTLSet_ZeroFallsBackToDefaults(t *testing.T) {
	ttl := NewTTLSet(config.CacheTTL{})
	assert.Equal(t, 10*time.Second, ttl.Short)
	assert.Equal(t, time.Minute, ttl.Medium)
	assert.Equal(t, 5*time.Minute, ttl.Long)
}
