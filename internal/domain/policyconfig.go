package domain

import "time"

// CancellationPolicyName идентификатор варианта политики отмены
type CancellationPolicyName string

const (
	PolicyFlatRate       CancellationPolicyName = "flat_rate"
	PolicyStrict         CancellationPolicyName = "strict"
	PolicyFlexible       CancellationPolicyName = "flexible"
	PolicyNoCancellation CancellationPolicyName = "no_cancellation"
)

// ResourcePolicyConfig represents the pricing-policy configuration row
// for a resource. Supports hierarchical configuration:
// 1. Plan at specific resource (provider_id, resource_id, plan_name)
// 2. Resource-wide (provider_id, resource_id, NULL)
// 3. Provider-wide (provider_id, NULL, NULL)
type ResourcePolicyConfig struct {
	ID         int64
	ProviderID int64
	ResourceID *int64  // NULL = config for all resources
	PlanName   *string // NULL = config for all plans

	CancellationPolicy CancellationPolicyName

	// Discount settings applied by the pricing chain.
	PlanDiscountRate    float64  // 0 = no plan discount
	MinPriceForDiscount float64  // 0 = no threshold
	MaxDiscountAmount   *float64 // NULL = uncapped
	Currency            string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsProviderWide returns true if this is a provider-wide configuration
func (c *ResourcePolicyConfig) IsProviderWide() bool {
	return c.ResourceID == nil && c.PlanName == nil
}

// IsResourceSpecific returns true if this configuration is for a specific resource
func (c *ResourcePolicyConfig) IsResourceSpecific() bool {
	return c.ResourceID != nil && c.PlanName == nil
}

// IsPlanAtResource returns true if this configuration is for a specific plan at a specific resource
func (c *ResourcePolicyConfig) IsPlanAtResource() bool {
	return c.ResourceID != nil && c.PlanName != nil
}

// HasPlanDiscount returns true if a plan discount rate is configured
func (c *ResourcePolicyConfig) HasPlanDiscount() bool {
	return c.PlanDiscountRate > 0
}
