package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type account struct {
	active  bool
	balance int
}

func activeSpec() Specification[account] {
	return New("account must be active", func(a account) bool {
		return a.active
	})
}

func fundedSpec() Specification[account] {
	return New("account must have funds", func(a account) bool {
		return a.balance > 0
	})
}

func TestLeaf(t *testing.T) {
	spec := activeSpec()

	assert.True(t, spec.IsSatisfiedBy(account{active: true}))
	assert.False(t, spec.IsSatisfiedBy(account{active: false}))
	assert.Equal(t, "account must be active", spec.Describe())
}

func TestAnd(t *testing.T) {
	spec := And(activeSpec(), fundedSpec())

	assert.True(t, spec.IsSatisfiedBy(account{active: true, balance: 10}))
	assert.False(t, spec.IsSatisfiedBy(account{active: true, balance: 0}))
	assert.False(t, spec.IsSatisfiedBy(account{active: false, balance: 10}))
	assert.False(t, spec.IsSatisfiedBy(account{active: false, balance: 0}))

	assert.Equal(t, "(account must be active AND account must have funds)", spec.Describe())
}

func TestOr(t *testing.T) {
	spec := Or(activeSpec(), fundedSpec())

	assert.True(t, spec.IsSatisfiedBy(account{active: true, balance: 0}))
	assert.True(t, spec.IsSatisfiedBy(account{active: false, balance: 10}))
	assert.False(t, spec.IsSatisfiedBy(account{active: false, balance: 0}))

	assert.Equal(t, "(account must be active OR account must have funds)", spec.Describe())
}

func TestNot(t *testing.T) {
	spec := Not(activeSpec())

	assert.True(t, spec.IsSatisfiedBy(account{active: false}))
	assert.False(t, spec.IsSatisfiedBy(account{active: true}))
	assert.Equal(t, "NOT account must be active", spec.Describe())
}

func TestNot_DoubleNegationCollapses(t *testing.T) {
	inner := activeSpec()
	doubled := Not(Not(inner))

	// Структурный коллапс, а не только эквивалентность по значению
	assert.Same(t, inner, doubled)
	assert.Equal(t, "account must be active", doubled.Describe())

	tripled := Not(doubled)
	assert.Equal(t, "NOT account must be active", tripled.Describe())
}

func TestFailureReason(t *testing.T) {
	active := activeSpec()
	funded := fundedSpec()

	tests := []struct {
		name string
		spec Specification[account]
		ctx  account
		want string
	}{
		{
			name: "satisfied returns empty",
			spec: active,
			ctx:  account{active: true},
			want: "",
		},
		{
			name: "leaf failure",
			spec: active,
			ctx:  account{active: false},
			want: "account must be active is not satisfied",
		},
		{
			name: "and names only the failing leaf",
			spec: And(active, funded),
			ctx:  account{active: true, balance: 0},
			want: "account must have funds is not satisfied",
		},
		{
			name: "and names both failing leaves",
			spec: And(active, funded),
			ctx:  account{active: false, balance: 0},
			want: "account must be active is not satisfied; account must have funds is not satisfied",
		},
		{
			name: "or names both branches when it fails",
			spec: Or(active, funded),
			ctx:  account{active: false, balance: 0},
			want: "account must be active is not satisfied; account must have funds is not satisfied",
		},
		{
			name: "not explains the unwanted satisfaction",
			spec: Not(active),
			ctx:  account{active: true},
			want: "account must be active is satisfied, but its negation is required",
		},
		{
			name: "nested composition finds the deep leaf",
			spec: And(Or(active, funded), Not(New("account must be blocked", func(a account) bool { return false }))),
			ctx:  account{active: false, balance: 0},
			want: "account must be active is not satisfied; account must have funds is not satisfied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FailureReason(tt.spec, tt.ctx))
		})
	}
}
