package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validQuote(now time.Time) Quote {
	return Quote{
		USD:           45000,
		USDMarketCap:  8.8e11,
		USDVolume24h:  2.1e10,
		USDChange24h:  2.3,
		LastUpdatedAt: now.Add(-time.Second).Unix(),
	}
}

func TestValidate_AcceptsPlausibleQuote(t *testing.T) {
	now := time.Now().UTC()
	violations := Validate(validQuote(now), now)
	assert.Empty(t, violations, "a plausible quote must pass with zero violations")
}

func TestValidate_RejectsNonPositivePrice(t *testing.T) {
	now := time.Now().UTC()
	for _, price := range []float64{0, -1, -45000} {
		q := validQuote(now)
		q.USD = price
		violations := Validate(q, now)
		assert.Contains(t, violations, ViolationPriceNotPositive, "price %v should be rejected", price)
	}
}

func TestValidate_RejectsChangeOutOfRange(t *testing.T) {
	now := time.Now().UTC()
	for _, change := range []float64{-100.01, 101, 250} {
		q := validQuote(now)
		q.USDChange24h = change
		violations := Validate(q, now)
		assert.Contains(t, violations, ViolationChangeOutOfRange, "change %v should be rejected", change)
	}

	// Inclusive bounds are accepted.
	for _, change := range []float64{-100, 100} {
		q := validQuote(now)
		q.USDChange24h = change
		assert.Empty(t, Validate(q, now), "change %v lies on the inclusive bound", change)
	}
}

func TestValidate_RejectsFutureTimestamp(t *testing.T) {
	now := time.Now().UTC()
	q := validQuote(now)
	q.LastUpdatedAt = now.Add(time.Hour).Unix()
	violations := Validate(q, now)
	assert.Contains(t, violations, ViolationTimestampInFuture)
}

func TestValidate_RejectsMissingTimestamp(t *testing.T) {
	now := time.Now().UTC()
	q := validQuote(now)
	q.LastUpdatedAt = 0
	violations := Validate(q, now)
	assert.Contains(t, violations, ViolationTimestampMissing)
	assert.NotContains(t, violations, ViolationTimestampInFuture, "missing and future are mutually exclusive")
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	now := time.Now().UTC()
	q := Quote{
		USD:           0,
		USDMarketCap:  -5,
		USDVolume24h:  0,
		USDChange24h:  150,
		LastUpdatedAt: 0,
	}
	violations := Validate(q, now)
	assert.Len(t, violations, 5, "all independent rules should report, not just the first")
	assert.ElementsMatch(t, []Violation{
		ViolationPriceNotPositive,
		ViolationMarketCapNotPositive,
		ViolationVolumeNotPositive,
		ViolationChangeOutOfRange,
		ViolationTimestampMissing,
	}, violations)
}

func TestViolation_MessageNonEmpty(t *testing.T) {
	for _, v := range []Violation{
		ViolationPriceNotPositive,
		ViolationMarketCapNotPositive,
		ViolationVolumeNotPositive,
		ViolationChangeOutOfRange,
		ViolationTimestampMissing,
		ViolationTimestampInFuture,
	} {
		assert.NotEmpty(t, v.Message())
	}
}
