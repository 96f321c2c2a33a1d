package pricing

import (
	"sort"
	"strings"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
)

// Chain is an ordered list of discount policies. Policies are sorted by
// priority at construction; ties keep insertion order (stable sort),
// which callers may rely on.
type Chain struct {
	policies []Policy
}

// NewChain creates a chain from the given policies, priority-sorted.
func NewChain(policies ...Policy) *Chain {
	sorted := make([]Policy, len(policies))
	copy(sorted, policies)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	return &Chain{policies: sorted}
}

// Policies returns the policies in evaluation order.
func (c *Chain) Policies() []Policy {
	out := make([]Policy, len(c.policies))
	copy(out, c.policies)
	return out
}

// Apply runs every applicable policy in order, feeding each the price
// produced by the previous one. Inapplicable policies are skipped;
// that is normal control flow, not an error.
func (c *Chain) Apply(price domain.Money, ctx domain.DiscountContext) (domain.Money, error) {
	current := price
	for _, p := range c.policies {
		if !p.IsApplicable(ctx) {
			continue
		}
		discounted, err := p.Apply(current, ctx)
		if err != nil {
			return domain.Money{}, err
		}
		current = discounted
	}
	return current, nil
}

// Applied returns the descriptions of the policies that apply to the context.
func (c *Chain) Applied(ctx domain.DiscountContext) []string {
	var out []string
	for _, p := range c.policies {
		if p.IsApplicable(ctx) {
			out = append(out, p.Describe())
		}
	}
	return out
}

// Describe renders the whole chain in evaluation order.
func (c *Chain) Describe() string {
	if len(c.policies) == 0 {
		return "no discount policies"
	}
	parts := make([]string, len(c.policies))
	for i, p := range c.policies {
		parts[i] = p.Describe()
	}
	return strings.Join(parts, " -> ")
}
