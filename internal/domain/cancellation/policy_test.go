package cancellation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/pkg/ptr"
)

func krw(t *testing.T, amount int64) domain.Money {
	t.Helper()
	m, err := domain.NewMoneyFromInt(amount, "KRW")
	require.NoError(t, err)
	return m
}

func leadCtx(lead time.Duration) domain.CancellationContext {
	reserved := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	return domain.CancellationContext{
		ReservedAt:  reserved,
		RequestedAt: reserved.Add(-lead),
	}
}

func TestNewFeeTable(t *testing.T) {
	_, err := NewFeeTable()
	assert.ErrorIs(t, err, ErrEmptyTable)

	_, err = NewFeeTable(FeeRule{MinLeadTime: -time.Hour, Rate: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidRule)

	// Пустое окно [2h, 2h)
	_, err = NewFeeTable(FeeRule{MinLeadTime: 2 * time.Hour, MaxLeadTime: ptr.Ptr(2 * time.Hour), Rate: decimal.Zero})
	assert.ErrorIs(t, err, ErrInvalidRule)

	_, err = NewFeeTable(FeeRule{MinLeadTime: 0, Rate: decimal.NewFromInt(2)})
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestFeeRule_WindowBounds(t *testing.T) {
	rule := FeeRule{
		MinLeadTime: 6 * time.Hour,
		MaxLeadTime: ptr.Ptr(24 * time.Hour),
		Rate:        decimal.RequireFromString("0.2"),
	}

	// Нижняя граница включена, верхняя исключена
	assert.True(t, rule.Matches(6*time.Hour))
	assert.True(t, rule.Matches(23*time.Hour+59*time.Minute))
	assert.False(t, rule.Matches(24*time.Hour))
	assert.False(t, rule.Matches(5*time.Hour+59*time.Minute))
}

func TestStandardTiers_CalculateFee(t *testing.T) {
	table := StandardTiers()
	price := krw(t, 10000)

	tests := []struct {
		name string
		lead time.Duration
		want int64
	}{
		{name: "24h exactly is free", lead: 24 * time.Hour, want: 0},
		{name: "just under 24h pays 20%", lead: 23*time.Hour + 59*time.Minute, want: 2000},
		{name: "6h exactly pays 20%", lead: 6 * time.Hour, want: 2000},
		{name: "4h pays 50%", lead: 4 * time.Hour, want: 5000},
		{name: "2h exactly pays 50%", lead: 2 * time.Hour, want: 5000},
		{name: "90m pays 80%", lead: 90 * time.Minute, want: 8000},
		{name: "zero lead pays 80%", lead: 0, want: 8000},
		{name: "after reserved moment forfeits full price", lead: -time.Hour, want: 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, err := table.CalculateFee(price, tt.lead)
			require.NoError(t, err)
			assert.True(t, fee.Equals(krw(t, tt.want)), "lead %s: got %s, want %d KRW", tt.lead, fee, tt.want)
		})
	}
}

func TestFeeTable_FixedFeeAndCap(t *testing.T) {
	table, err := NewFeeTable(FeeRule{
		MinLeadTime: 0,
		Rate:        decimal.RequireFromString("0.5"),
		FixedFee:    krw(t, 1000),
		Cap:         ptr.Ptr(krw(t, 4000)),
	})
	require.NoError(t, err)

	// 50% от 10000 плюс 1000 это 6000, но ограничено 4000
	fee, err := table.CalculateFee(krw(t, 10000), time.Hour)
	require.NoError(t, err)
	assert.True(t, fee.Equals(krw(t, 4000)))

	// 50% от 2000 плюс 1000 это 2000: лимит не достигнут
	fee, err = table.CalculateFee(krw(t, 2000), time.Hour)
	require.NoError(t, err)
	assert.True(t, fee.Equals(krw(t, 2000)))
}

func TestFeeTable_FeeNeverExceedsPrice(t *testing.T) {
	table, err := NewFeeTable(FeeRule{
		MinLeadTime: 0,
		Rate:        decimal.RequireFromString("0.5"),
		FixedFee:    krw(t, 5000),
	})
	require.NoError(t, err)

	// 50% от 1000 плюс 5000 превышает цену: комиссия обрезается до цены
	fee, err := table.CalculateFee(krw(t, 1000), time.Hour)
	require.NoError(t, err)
	assert.True(t, fee.Equals(krw(t, 1000)))
}

func TestFeeTable_UnmatchedLeadForfeitsFullPrice(t *testing.T) {
	// Таблица покрывает только [10h, ∞)
	table, err := NewFeeTable(FeeRule{MinLeadTime: 10 * time.Hour, Rate: decimal.Zero})
	require.NoError(t, err)

	fee, err := table.CalculateFee(krw(t, 10000), time.Hour)
	require.NoError(t, err)
	assert.True(t, fee.Equals(krw(t, 10000)))
}

func TestTieredPolicy_SameDayFloor(t *testing.T) {
	policy := NewTieredPolicy("strict", StrictTiers()).WithSameDayFloor(2 * time.Hour)

	sameDayShort := leadCtx(time.Hour)
	sameDayShort.IsSameDay = true

	allowed, reason := policy.IsCancellationAllowed(sameDayShort)
	assert.False(t, allowed)
	assert.NotEmpty(t, reason)

	// Запрещённая отмена всё равно имеет определённую комиссию: полная цена
	fee, err := policy.CalculateFee(krw(t, 10000), sameDayShort)
	require.NoError(t, err)
	assert.True(t, fee.Equals(krw(t, 10000)))

	// Тот же запас времени, но не в день брони: запрета нет
	otherDay := leadCtx(time.Hour)
	allowed, _ = policy.IsCancellationAllowed(otherDay)
	assert.True(t, allowed)

	sameDayLong := leadCtx(3 * time.Hour)
	sameDayLong.IsSameDay = true
	allowed, _ = policy.IsCancellationAllowed(sameDayLong)
	assert.True(t, allowed)
}

func TestStrictTiers_Rates(t *testing.T) {
	table := StrictTiers()
	price := krw(t, 10000)

	tests := []struct {
		lead time.Duration
		want int64
	}{
		{lead: 48 * time.Hour, want: 1000},
		{lead: 24 * time.Hour, want: 3000},
		{lead: 6 * time.Hour, want: 6000},
		{lead: time.Hour, want: 9000},
	}

	for _, tt := range tests {
		fee, err := table.CalculateFee(price, tt.lead)
		require.NoError(t, err)
		assert.True(t, fee.Equals(krw(t, tt.want)), "lead %s: got %s, want %d KRW", tt.lead, fee, tt.want)
	}
}

func TestFlexiblePolicy_FirstCancellation(t *testing.T) {
	policy, err := NewFlexiblePolicy("flexible", StandardTiers(), 6*time.Hour, decimal.RequireFromString("0.5"))
	require.NoError(t, err)

	price := krw(t, 10000)

	// Первая отмена с запасом от 6 часов бесплатна
	ctx := leadCtx(8 * time.Hour)
	ctx.IsFirstCancellation = true
	fee, err := policy.CalculateFee(price, ctx)
	require.NoError(t, err)
	assert.True(t, fee.IsZero())

	// Первая отмена с меньшим запасом платит половину табличной комиссии:
	// 4 часа это 50%, уменьшенная вдвое до 25%
	ctx = leadCtx(4 * time.Hour)
	ctx.IsFirstCancellation = true
	fee, err = policy.CalculateFee(price, ctx)
	require.NoError(t, err)
	assert.True(t, fee.Equals(krw(t, 2500)))

	// Повторная отмена платит полную табличную комиссию
	ctx = leadCtx(8 * time.Hour)
	fee, err = policy.CalculateFee(price, ctx)
	require.NoError(t, err)
	assert.True(t, fee.Equals(krw(t, 2000)))

	// Просроченная отмена лишает льготы даже первую
	ctx = leadCtx(-time.Hour)
	ctx.IsFirstCancellation = true
	fee, err = policy.CalculateFee(price, ctx)
	require.NoError(t, err)
	assert.True(t, fee.Equals(price))

	allowed, _ := policy.IsCancellationAllowed(leadCtx(time.Minute))
	assert.True(t, allowed)
}

func TestNoCancellationPolicy(t *testing.T) {
	bare := NewNoCancellationPolicy("no_cancellation")

	allowed, reason := bare.IsCancellationAllowed(leadCtx(100 * time.Hour))
	assert.False(t, allowed)
	assert.NotEmpty(t, reason)

	withException := bare.WithEmergencyException(12 * time.Hour)

	// Без флага чрезвычайной ситуации запрет сохраняется
	allowed, _ = withException.IsCancellationAllowed(leadCtx(24 * time.Hour))
	assert.False(t, allowed)

	emergency := leadCtx(24 * time.Hour)
	emergency.IsEmergency = true
	allowed, _ = withException.IsCancellationAllowed(emergency)
	assert.True(t, allowed)

	lateEmergency := leadCtx(6 * time.Hour)
	lateEmergency.IsEmergency = true
	allowed, _ = withException.IsCancellationAllowed(lateEmergency)
	assert.False(t, allowed)

	// Даже разрешённая отмена теряет полную стоимость
	fee, err := withException.CalculateFee(krw(t, 10000), emergency)
	require.NoError(t, err)
	assert.True(t, fee.Equals(krw(t, 10000)))
}

func TestForName(t *testing.T) {
	for _, name := range []domain.CancellationPolicyName{
		domain.PolicyFlatRate,
		domain.PolicyStrict,
		domain.PolicyFlexible,
		domain.PolicyNoCancellation,
	} {
		policy, err := ForName(name)
		require.NoError(t, err, "policy %s", name)
		assert.NotNil(t, policy)
	}

	_, err := ForName("unknown_policy")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}
