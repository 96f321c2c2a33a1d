package quote_price

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/domain/cancellation"
	"github.com/junhyeong9812/hexapass-sub002/internal/infra/storage/policyconfig"
	"github.com/junhyeong9812/hexapass-sub002/internal/integrations/memberservice"
	"github.com/junhyeong9812/hexapass-sub002/pkg/ptr"
)

// previewLeadTimes запасы времени для таблицы комиссий в ответе
var previewLeadTimes = []time.Duration{
	48 * time.Hour,
	24 * time.Hour,
	6 * time.Hour,
	2 * time.Hour,
	time.Hour,
}

// Usecase предварительный расчёт цены бронирования: скидки и условия
// отмены без записи в хранилище
type Usecase struct {
	policies     PolicyConfigRepository
	members      MemberServiceClient
	timeProvider TimeProvider
	log          Logger
}

func NewUsecase(
	policies PolicyConfigRepository,
	members MemberServiceClient,
	timeProvider TimeProvider,
	log Logger,
) *Usecase {
	return &Usecase{
		policies:     policies,
		members:      members,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute рассчитывает итоговую цену и условия отмены для слота
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()

	slot, err := domain.NewTimeSlot(req.SlotStart, req.SlotEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	basePrice, err := domain.NewMoneyFromString(req.BasePrice, req.Currency)
	if err != nil {
		return nil, fmt.Errorf("%w: Execute - base price: %v", ErrInvalidInput, err)
	}

	member, err := u.fetchMember(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	cfg := u.fetchPolicyConfig(ctx, req.ProviderID, req.ResourceID, member.PlanName)

	chain, err := buildDiscountChain(cfg, req.Currency)
	if err != nil {
		u.log.Error("QuotePrice: failed to build discount chain: %v", err)
		return nil, fmt.Errorf("%w: Execute - build discount chain: %v", ErrInternal, err)
	}

	discountCtx := domain.DiscountContext{
		MemberID:              req.MemberID,
		PlanName:              member.PlanName,
		CompletedReservations: member.CompletedReservations,
		IsFirstReservation:    member.IsFirstReservation(),
		RequestedAt:           now,
	}

	finalPrice, err := chain.Apply(basePrice, discountCtx)
	if err != nil {
		u.log.Error("QuotePrice: discount chain failed for member_id=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: Execute - apply discounts: %v", ErrInternal, err)
	}

	policyName := domain.PolicyFlatRate
	if cfg != nil && cfg.CancellationPolicy != "" {
		policyName = cfg.CancellationPolicy
	}

	policy, err := cancellation.ForName(policyName)
	if err != nil {
		u.log.Error("QuotePrice: unknown cancellation policy %q: %v", policyName, err)
		return nil, fmt.Errorf("%w: Execute - build cancellation policy: %v", ErrInternal, err)
	}

	preview, err := buildFeePreview(policy, finalPrice, now)
	if err != nil {
		u.log.Error("QuotePrice: fee preview failed: %v", err)
		return nil, fmt.Errorf("%w: Execute - fee preview: %v", ErrInternal, err)
	}

	return &Response{
		Slot:               slot.String(),
		OriginalPrice:      basePrice.String(),
		FinalPrice:         finalPrice.String(),
		Discounts:          chain.Applied(discountCtx),
		CancellationPolicy: policy.Describe(),
		FeePreview:         preview,
	}, nil
}

func (u *Usecase) fetchMember(ctx context.Context, memberID int64) (*memberservice.Member, error) {
	member, err := u.members.GetMemberWithGracefulDegradation(ctx, memberID)
	if err != nil {
		if errors.Is(err, memberservice.ErrMemberNotFound) {
			return nil, fmt.Errorf("%w: member_id=%d", ErrMemberNotFound, memberID)
		}

		if errors.Is(err, memberservice.ErrServiceDegraded) {
			u.log.Warn("QuotePrice: member service degraded, quoting base price for member_id=%d", memberID)
			return &memberservice.Member{
				ID:                    memberID,
				PlanActive:            true,
				CompletedReservations: 1,
			}, nil
		}

		return nil, fmt.Errorf("%w: Execute - fetch member: %v", ErrInternal, err)
	}

	return member, nil
}

func (u *Usecase) fetchPolicyConfig(ctx context.Context, providerID, resourceID int64, planName string) *domain.ResourcePolicyConfig {
	var plan *string
	if planName != "" {
		plan = ptr.Ptr(planName)
	}

	cfg, err := u.policies.GetConfigWithHierarchy(ctx, providerID, ptr.Ptr(resourceID), plan)
	if err != nil {
		if !errors.Is(err, policyconfig.ErrConfigNotFound) {
			u.log.Warn("QuotePrice: failed to fetch policy config for provider_id=%d, using defaults: %v", providerID, err)
		}
		return nil
	}

	return cfg
}

// buildFeePreview считает комиссию на фиксированных запасах времени.
// Льготы первой отмены в превью не учитываются, показывается базовый тариф
func buildFeePreview(policy cancellation.Policy, price domain.Money, now time.Time) ([]FeePreview, error) {
	preview := make([]FeePreview, 0, len(previewLeadTimes))
	for _, lead := range previewLeadTimes {
		reservedAt := now.Add(lead)
		cancelCtx := domain.CancellationContext{
			ReservedAt:  reservedAt,
			RequestedAt: now,
			IsSameDay:   isSameDate(reservedAt, now),
		}

		fee, err := policy.CalculateFee(price, cancelCtx)
		if err != nil {
			return nil, err
		}

		preview = append(preview, FeePreview{
			LeadTime: lead.String(),
			Fee:      fee.String(),
		})
	}
	return preview, nil
}

func isSameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
