package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/domain/specification"
	"github.com/junhyeong9812/hexapass-sub002/internal/infra/storage/policyconfig"
	"github.com/junhyeong9812/hexapass-sub002/internal/integrations/memberservice"
	"github.com/junhyeong9812/hexapass-sub002/pkg/ptr"
)

// Usecase создание бронирования: проверка допуска, расчёт цены со скидками
// и запись в хранилище с защитой от пересечения слотов
type Usecase struct {
	reservations ReservationRepository
	policies     PolicyConfigRepository
	members      MemberServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	log          Logger
}

func NewUsecase(
	reservations ReservationRepository,
	policies PolicyConfigRepository,
	members MemberServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	log Logger,
) *Usecase {
	return &Usecase{
		reservations: reservations,
		policies:     policies,
		members:      members,
		txManager:    txManager,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute создаёт бронирование.
// Шаги: валидация, данные участника, правила допуска, конфигурация политик,
// расчёт цены, затем сериализуемая транзакция с проверкой пересечений
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

	activeCount, err := u.reservations.CountActiveByMember(ctx, req.MemberID)
	if err != nil {
		u.log.Error("CreateReservation: failed to count active reservations for member_id=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: Execute - count active reservations: %v", ErrInternal, err)
	}

	resCtx := domain.ReservationContext{
		MemberID:           req.MemberID,
		ResourceID:         req.ResourceID,
		PlanName:           member.PlanName,
		Slot:               slot,
		RequestedAt:        now,
		PlanActive:         member.PlanActive,
		ActiveReservations: activeCount,
		ConcurrentLimit:    member.ConcurrentLimit,
	}

	eligibility := eligibilitySpec()
	if !eligibility.IsSatisfiedBy(resCtx) {
		reason := specification.FailureReason(eligibility, resCtx)
		u.log.Info("CreateReservation: member_id=%d rejected: %s", req.MemberID, reason)
		return nil, fmt.Errorf("%w: %s", ErrNotEligible, reason)
	}

	cfg, err := u.fetchPolicyConfig(ctx, req.ProviderID, req.ResourceID, member.PlanName)
	if err != nil {
		return nil, err
	}

	chain, err := buildDiscountChain(cfg, req.Currency)
	if err != nil {
		u.log.Error("CreateReservation: failed to build discount chain: %v", err)
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
		u.log.Error("CreateReservation: discount chain failed for member_id=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: Execute - apply discounts: %v", ErrInternal, err)
	}

	reservation := &domain.Reservation{
		MemberID:      req.MemberID,
		ResourceID:    req.ResourceID,
		ProviderID:    req.ProviderID,
		Slot:          slot,
		Status:        domain.StatusConfirmed,
		ResourceName:  req.ResourceName,
		PlanName:      member.PlanName,
		OriginalPrice: basePrice,
		FinalPrice:    finalPrice,
		Notes:         req.Notes,
	}

	var created *domain.Reservation

	err = u.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := u.checkSlotAvailable(txCtx, req.ResourceID, slot); err != nil {
			return err
		}

		saved, createErr := u.reservations.Create(txCtx, reservation)
		if createErr != nil {
			return fmt.Errorf("%w: Execute - create reservation: %v", ErrInternal, createErr)
		}

		created = saved
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			return nil, err
		}
		u.log.Error("CreateReservation: transaction failed for member_id=%d: %v", req.MemberID, err)
		return nil, err
	}

	u.log.Info("CreateReservation: created reservation id=%d for member_id=%d, price %s -> %s",
		created.ID, req.MemberID, basePrice, finalPrice)

	return newResponse(created, chain.Applied(discountCtx)), nil
}

// fetchMember получает участника с graceful degradation.
// При недоступности MemberService бронирование продолжается с дефолтным
// профилем: активный план без имени, без скидок за первое бронирование
func (u *Usecase) fetchMember(ctx context.Context, memberID int64) (*memberservice.Member, error) {
	member, err := u.members.GetMemberWithGracefulDegradation(ctx, memberID)
	if err != nil {
		if errors.Is(err, memberservice.ErrMemberNotFound) {
			return nil, fmt.Errorf("%w: member_id=%d", ErrMemberNotFound, memberID)
		}

		if errors.Is(err, memberservice.ErrServiceDegraded) {
			u.log.Warn("CreateReservation: member service degraded, using default profile for member_id=%d", memberID)
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

// fetchPolicyConfig получает конфигурацию политик с иерархическим фолбэком.
// Отсутствие конфигурации не ошибка: применяются дефолты без скидок
func (u *Usecase) fetchPolicyConfig(ctx context.Context, providerID, resourceID int64, planName string) (*domain.ResourcePolicyConfig, error) {
	var plan *string
	if planName != "" {
		plan = ptr.Ptr(planName)
	}

	cfg, err := u.policies.GetConfigWithHierarchy(ctx, providerID, ptr.Ptr(resourceID), plan)
	if err != nil {
		if errors.Is(err, policyconfig.ErrConfigNotFound) {
			u.log.Debug("CreateReservation: no policy config for provider_id=%d resource_id=%d", providerID, resourceID)
			return nil, nil
		}
		u.log.Error("CreateReservation: failed to fetch policy config for provider_id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: Execute - fetch policy config: %v", ErrInternal, err)
	}

	return cfg, nil
}

// checkSlotAvailable проверяет, что слот не пересекается с активными
// бронированиями того же ресурса. Вызывается внутри сериализуемой транзакции
func (u *Usecase) checkSlotAvailable(ctx context.Context, resourceID int64, slot domain.TimeSlot) error {
	dayStart := time.Date(slot.Start().Year(), slot.Start().Month(), slot.Start().Day(), 0, 0, 0, 0, slot.Start().Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	existing, err := u.reservations.GetByResourceWithFilter(ctx, domain.ResourceReservationsFilter{
		ResourceID: resourceID,
		StartDate:  ptr.Ptr(dayStart),
		EndDate:    ptr.Ptr(dayEnd),
	})
	if err != nil {
		return fmt.Errorf("%w: checkSlotAvailable - fetch reservations: %v", ErrInternal, err)
	}

	for _, res := range existing {
		if !res.IsActive() {
			continue
		}
		if res.Slot.Overlaps(slot) {
			return fmt.Errorf("%w: %s", ErrSlotConflict, res.Slot)
		}
	}

	return nil
}
