package feed

import "time"

// Violation identifies a single plausibility rule a quote failed.
type Violation string

const (
	ViolationPriceNotPositive     Violation = "price_not_positive"
	ViolationMarketCapNotPositive Violation = "market_cap_not_positive"
	ViolationVolumeNotPositive    Violation = "volume_not_positive"
	ViolationChangeOutOfRange     Violation = "change_out_of_range"
	ViolationTimestampMissing     Violation = "timestamp_missing"
	ViolationTimestampInFuture    Violation = "timestamp_in_future"
)

// Message returns the human-readable description of a violation.
func (v Violation) Message() string {
	switch v {
	case ViolationPriceNotPositive:
		return "USD price must be greater than 0"
	case ViolationMarketCapNotPositive:
		return "USD market cap must be greater than 0"
	case ViolationVolumeNotPositive:
		return "24h volume must be greater than 0"
	case ViolationChangeOutOfRange:
		return "24h change must be within [-100, 100]"
	case ViolationTimestampMissing:
		return "last-updated timestamp must be a positive epoch value"
	case ViolationTimestampInFuture:
		return "last-updated timestamp cannot be in the future"
	default:
		return string(v)
	}
}

// Validate applies every plausibility rule to a quote and collects all
// violations instead of stopping at the first. A nil/empty result means the
// quote can be trusted for persistence. Pure function, no I/O.
func Validate(q Quote, now time.Time) []Violation {
	var violations []Violation
	if q.USD <= 0 {
		violations = append(violations, ViolationPriceNotPositive)
	}
	if q.USDMarketCap <= 0 {
		violations = append(violations, ViolationMarketCapNotPositive)
	}
	if q.USDVolume24h <= 0 {
		violations = append(violations, ViolationVolumeNotPositive)
	}
	if q.USDChange24h < -100 || q.USDChange24h > 100 {
		violations = append(violations, ViolationChangeOutOfRange)
	}
	if q.LastUpdatedAt <= 0 {
		violations = append(violations, ViolationTimestampMissing)
	} else if q.LastUpdated().After(now) {
		violations = append(violations, ViolationTimestampInFuture)
	}
	return violations
}
