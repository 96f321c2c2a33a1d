package cancellation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/pkg/ptr"
)

// Standard tier tables. The thresholds and rates are the literal
// business values; do not tune them without the pricing owners.

// StandardTiers is the flat-rate table:
// [24h, ∞) -> 0%, [6h, 24h) -> 20%, [2h, 6h) -> 50%, [0h, 2h) -> 80%.
func StandardTiers() FeeTable {
	table, err := NewFeeTable(
		FeeRule{MinLeadTime: 24 * time.Hour, Rate: decimal.Zero},
		FeeRule{MinLeadTime: 6 * time.Hour, MaxLeadTime: ptr.Ptr(24 * time.Hour), Rate: decimal.RequireFromString("0.2")},
		FeeRule{MinLeadTime: 2 * time.Hour, MaxLeadTime: ptr.Ptr(6 * time.Hour), Rate: decimal.RequireFromString("0.5")},
		FeeRule{MinLeadTime: 0, MaxLeadTime: ptr.Ptr(2 * time.Hour), Rate: decimal.RequireFromString("0.8")},
	)
	if err != nil {
		// Таблица собирается из констант: ошибка здесь - дефект программы
		panic(err)
	}
	return table
}

// StrictTiers is the higher-percentage table used by the strict policy:
// [48h, ∞) -> 10%, [24h, 48h) -> 30%, [6h, 24h) -> 60%, [0h, 6h) -> 90%.
func StrictTiers() FeeTable {
	table, err := NewFeeTable(
		FeeRule{MinLeadTime: 48 * time.Hour, Rate: decimal.RequireFromString("0.1")},
		FeeRule{MinLeadTime: 24 * time.Hour, MaxLeadTime: ptr.Ptr(48 * time.Hour), Rate: decimal.RequireFromString("0.3")},
		FeeRule{MinLeadTime: 6 * time.Hour, MaxLeadTime: ptr.Ptr(24 * time.Hour), Rate: decimal.RequireFromString("0.6")},
		FeeRule{MinLeadTime: 0, MaxLeadTime: ptr.Ptr(6 * time.Hour), Rate: decimal.RequireFromString("0.9")},
	)
	if err != nil {
		panic(err)
	}
	return table
}

// Floors and rates shared by the standard policy variants.
const (
	strictSameDayFloor  = 2 * time.Hour
	flexibleWaiverFloor = 6 * time.Hour
	emergencyFloor      = 12 * time.Hour
)

// flexibleReducedRate scales the table fee for first cancellations
// below the waiver floor.
var flexibleReducedRate = decimal.RequireFromString("0.5")

// ForName builds the standard policy variant for a configured name.
func ForName(name domain.CancellationPolicyName) (Policy, error) {
	switch name {
	case domain.PolicyFlatRate:
		return NewTieredPolicy(string(name), StandardTiers()), nil

	case domain.PolicyStrict:
		return NewTieredPolicy(string(name), StrictTiers()).
			WithSameDayFloor(strictSameDayFloor), nil

	case domain.PolicyFlexible:
		return NewFlexiblePolicy(string(name), StandardTiers(), flexibleWaiverFloor, flexibleReducedRate)

	case domain.PolicyNoCancellation:
		return NewNoCancellationPolicy(string(name)).
			WithEmergencyException(emergencyFloor), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
