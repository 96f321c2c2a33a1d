package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/domain/specification"
)

func krw(t *testing.T, amount int64) domain.Money {
	t.Helper()
	m, err := domain.NewMoneyFromInt(amount, "KRW")
	require.NoError(t, err)
	return m
}

func premiumOnly() specification.Specification[domain.DiscountContext] {
	return specification.New("premium plan required", func(ctx domain.DiscountContext) bool {
		return ctx.PlanName == "premium"
	})
}

func TestNewRatePolicy_ValidatesRate(t *testing.T) {
	_, err := NewRatePolicy("bad", decimal.NewFromFloat(1.5), nil)
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	_, err = NewRatePolicy("bad", decimal.NewFromFloat(-0.1), nil)
	assert.ErrorIs(t, err, ErrInvalidPolicy)

	p, err := NewRatePolicy("ok", decimal.NewFromFloat(0.2), nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPriority, p.Priority())
}

func TestRatePolicy_Apply(t *testing.T) {
	base, err := NewRatePolicy("plan discount", decimal.NewFromFloat(0.2), nil)
	require.NoError(t, err)

	policy := base.
		WithMinPrice(krw(t, 5000)).
		WithMaxDiscount(krw(t, 5000))

	tests := []struct {
		name  string
		price int64
		want  int64
	}{
		// Скидка 20% от 50000 это 10000, но ограничена 5000
		{name: "discount capped", price: 50000, want: 45000},
		// Скидка 20% от 20000 это 4000, лимит не достигнут
		{name: "discount below cap", price: 20000, want: 16000},
		// Цена ниже порога 5000: скидка не применяется вовсе
		{name: "below threshold unchanged", price: 3000, want: 3000},
		// Цена ровно на пороге: скидка применяется
		{name: "at threshold", price: 5000, want: 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := policy.Apply(krw(t, tt.price), domain.DiscountContext{})
			require.NoError(t, err)
			assert.True(t, got.Equals(krw(t, tt.want)), "got %s, want %d KRW", got, tt.want)
		})
	}
}

func TestRatePolicy_Condition(t *testing.T) {
	policy, err := NewRatePolicy("premium discount", decimal.NewFromFloat(0.1), premiumOnly())
	require.NoError(t, err)

	assert.True(t, policy.IsApplicable(domain.DiscountContext{PlanName: "premium"}))
	assert.False(t, policy.IsApplicable(domain.DiscountContext{PlanName: "basic"}))

	unconditional, err := NewRatePolicy("always", decimal.NewFromFloat(0.1), nil)
	require.NoError(t, err)
	assert.True(t, unconditional.IsApplicable(domain.DiscountContext{}))
}

func TestFixedAmountPolicy_ClampsToZero(t *testing.T) {
	policy := NewFixedAmountPolicy("coupon", krw(t, 5000), nil)

	got, err := policy.Apply(krw(t, 20000), domain.DiscountContext{})
	require.NoError(t, err)
	assert.True(t, got.Equals(krw(t, 15000)))

	// Купон больше цены: итог ноль, а не ошибка
	got, err = policy.Apply(krw(t, 3000), domain.DiscountContext{})
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestChain_AppliesInPriorityOrder(t *testing.T) {
	second, err := NewRatePolicy("second", decimal.NewFromFloat(0.1), nil)
	require.NoError(t, err)

	first, err := NewRatePolicy("first", decimal.NewFromFloat(0.2), nil)
	require.NoError(t, err)

	chain := NewChain(
		second.WithPriority(20),
		first.WithPriority(10),
	)

	policies := chain.Policies()
	require.Len(t, policies, 2)
	assert.Equal(t, 10, policies[0].Priority())
	assert.Equal(t, 20, policies[1].Priority())

	// Скидки последовательны: 10000 -> 8000 -> 7200
	got, err := chain.Apply(krw(t, 10000), domain.DiscountContext{})
	require.NoError(t, err)
	assert.True(t, got.Equals(krw(t, 7200)))
}

func TestChain_StableOrderForEqualPriorities(t *testing.T) {
	a := NewFixedAmountPolicy("inserted first", krw(t, 100), nil)
	b := NewFixedAmountPolicy("inserted second", krw(t, 200), nil)

	chain := NewChain(a, b)

	policies := chain.Policies()
	require.Len(t, policies, 2)
	assert.Equal(t, "inserted first: 100 KRW off", policies[0].Describe())
	assert.Equal(t, "inserted second: 200 KRW off", policies[1].Describe())
}

func TestChain_SkipsInapplicablePolicies(t *testing.T) {
	premium, err := NewRatePolicy("premium discount", decimal.NewFromFloat(0.5), premiumOnly())
	require.NoError(t, err)

	always, err := NewRatePolicy("base discount", decimal.NewFromFloat(0.1), nil)
	require.NoError(t, err)

	chain := NewChain(premium.WithPriority(10), always.WithPriority(20))

	got, err := chain.Apply(krw(t, 10000), domain.DiscountContext{PlanName: "basic"})
	require.NoError(t, err)
	assert.True(t, got.Equals(krw(t, 9000)))

	applied := chain.Applied(domain.DiscountContext{PlanName: "basic"})
	require.Len(t, applied, 1)
	assert.Contains(t, applied[0], "base discount")
}

func TestChain_EmptyChainKeepsPrice(t *testing.T) {
	chain := NewChain()

	got, err := chain.Apply(krw(t, 10000), domain.DiscountContext{})
	require.NoError(t, err)
	assert.True(t, got.Equals(krw(t, 10000)))

	assert.Equal(t, "no discount policies", chain.Describe())
}
