package create_reservation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/domain/pricing"
	"github.com/junhyeong9812/hexapass-sub002/internal/domain/specification"
)

const (
	planDiscountPriority    = 10
	welcomeDiscountPriority = 20

	welcomeDiscountRate = 0.05
)

// buildDiscountChain собирает цепочку скидок из конфигурации ресурса.
// Скидка тарифа идёт первой, приветственная скидка за первое бронирование второй.
func buildDiscountChain(cfg *domain.ResourcePolicyConfig, currency string) (*pricing.Chain, error) {
	var policies []pricing.Policy

	if cfg != nil && cfg.HasPlanDiscount() {
		planActive := specification.New("membership plan discount requires an active plan",
			func(ctx domain.DiscountContext) bool {
				return ctx.PlanName != ""
			})

		planPolicy, err := pricing.NewRatePolicy(
			"plan discount",
			decimal.NewFromFloat(cfg.PlanDiscountRate),
			planActive,
		)
		if err != nil {
			return nil, fmt.Errorf("buildDiscountChain - plan policy: %w", err)
		}

		planPolicy = planPolicy.WithPriority(planDiscountPriority)

		if cfg.MinPriceForDiscount > 0 {
			minPrice, err := domain.NewMoney(decimal.NewFromFloat(cfg.MinPriceForDiscount), currency)
			if err != nil {
				return nil, fmt.Errorf("buildDiscountChain - min price: %w", err)
			}
			planPolicy = planPolicy.WithMinPrice(minPrice)
		}

		if cfg.MaxDiscountAmount != nil {
			maxDiscount, err := domain.NewMoney(decimal.NewFromFloat(*cfg.MaxDiscountAmount), currency)
			if err != nil {
				return nil, fmt.Errorf("buildDiscountChain - max discount: %w", err)
			}
			planPolicy = planPolicy.WithMaxDiscount(maxDiscount)
		}

		policies = append(policies, planPolicy)
	}

	firstReservation := specification.New("welcome discount applies to the first reservation only",
		func(ctx domain.DiscountContext) bool {
			return ctx.IsFirstReservation
		})

	welcomePolicy, err := pricing.NewRatePolicy(
		"welcome discount",
		decimal.NewFromFloat(welcomeDiscountRate),
		firstReservation,
	)
	if err != nil {
		return nil, fmt.Errorf("buildDiscountChain - welcome policy: %w", err)
	}
	policies = append(policies, welcomePolicy.WithPriority(welcomeDiscountPriority))

	return pricing.NewChain(policies...), nil
}
