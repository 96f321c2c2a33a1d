package cancel_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/domain/cancellation"
	"github.com/junhyeong9812/hexapass-sub002/internal/infra/storage/policyconfig"
	"github.com/junhyeong9812/hexapass-sub002/internal/infra/storage/reservation"
	"github.com/junhyeong9812/hexapass-sub002/internal/integrations/memberservice"
	"github.com/junhyeong9812/hexapass-sub002/pkg/ptr"
)

// Usecase отмена бронирования: проверка прав, выбор политики отмены
// по конфигурации ресурса и расчёт комиссии
type Usecase struct {
	reservations ReservationRepository
	policies     PolicyConfigRepository
	members      MemberServiceClient
	timeProvider TimeProvider
	log          Logger
}

func NewUsecase(
	reservations ReservationRepository,
	policies PolicyConfigRepository,
	members MemberServiceClient,
	timeProvider TimeProvider,
	log Logger,
) *Usecase {
	return &Usecase{
		reservations: reservations,
		policies:     policies,
		members:      members,
		timeProvider: timeProvider,
		log:          log,
	}
}

// Execute отменяет бронирование.
// Участник платит комиссию по политике отмены ресурса, провайдер
// отменяет без комиссии с полным возвратом
func (u *Usecase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	now := u.timeProvider.Now()

	res, err := u.reservations.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrReservationNotFound, req.ReservationID)
		}
		u.log.Error("CancelReservation: failed to fetch reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Execute - fetch reservation: %v", ErrInternal, err)
	}

	var status domain.ReservationStatus
	switch req.UserID {
	case res.MemberID:
		status = domain.StatusCancelledByMember
	case res.ProviderID:
		status = domain.StatusCancelledByProvider
	default:
		return nil, fmt.Errorf("%w: user_id=%d reservation_id=%d", ErrAccessDenied, req.UserID, req.ReservationID)
	}

	if !res.CanBeCancelled() {
		return nil, fmt.Errorf("%w: status=%s", ErrAlreadyFinished, res.Status)
	}

	fee, policyName, err := u.resolveFee(ctx, res, status, req.IsEmergency, now)
	if err != nil {
		return nil, err
	}

	refund, err := res.FinalPrice.Subtract(fee)
	if err != nil {
		u.log.Error("CancelReservation: refund calculation failed for id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Execute - refund: %v", ErrInternal, err)
	}

	reason := ""
	if req.Reason != nil {
		reason = *req.Reason
	}

	if err := u.reservations.Cancel(ctx, req.ReservationID, status, fee, reason); err != nil {
		if errors.Is(err, reservation.ErrReservationNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrReservationNotFound, req.ReservationID)
		}
		u.log.Error("CancelReservation: failed to cancel reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Execute - cancel reservation: %v", ErrInternal, err)
	}

	u.log.Info("CancelReservation: reservation id=%d cancelled with status=%s, fee=%s, refund=%s",
		req.ReservationID, status, fee, refund)

	return newResponse(req.ReservationID, status, fee, refund, policyName, now), nil
}

// resolveFee вычисляет комиссию за отмену.
// Отмена провайдером всегда бесплатна. Для участника комиссию определяет
// политика отмены из конфигурации ресурса; запрет политики блокирует отмену
func (u *Usecase) resolveFee(
	ctx context.Context,
	res *domain.Reservation,
	status domain.ReservationStatus,
	isEmergency bool,
	now time.Time,
) (domain.Money, string, error) {
	if status == domain.StatusCancelledByProvider {
		zero, err := domain.Zero(res.FinalPrice.Currency())
		if err != nil {
			return domain.Money{}, "", fmt.Errorf("%w: resolveFee - zero fee: %v", ErrInternal, err)
		}
		return zero, "provider cancellation, no fee", nil
	}

	policyName := u.fetchPolicyName(ctx, res)

	policy, err := cancellation.ForName(policyName)
	if err != nil {
		u.log.Error("CancelReservation: unknown cancellation policy %q for reservation id=%d: %v", policyName, res.ID, err)
		return domain.Money{}, "", fmt.Errorf("%w: resolveFee - build policy: %v", ErrInternal, err)
	}

	cancelCtx := domain.CancellationContext{
		ReservedAt:          res.Slot.Start(),
		RequestedAt:         now,
		IsFirstCancellation: u.isFirstCancellation(ctx, res.MemberID),
		IsSameDay:           isSameDate(now, res.Slot.Start()),
		IsEmergency:         isEmergency,
	}

	if allowed, why := policy.IsCancellationAllowed(cancelCtx); !allowed {
		return domain.Money{}, "", fmt.Errorf("%w: %s", ErrCancellationNotAllowed, why)
	}

	fee, err := policy.CalculateFee(res.FinalPrice, cancelCtx)
	if err != nil {
		u.log.Error("CancelReservation: fee calculation failed for reservation id=%d: %v", res.ID, err)
		return domain.Money{}, "", fmt.Errorf("%w: resolveFee - calculate fee: %v", ErrInternal, err)
	}

	return fee, policy.Describe(), nil
}

// fetchPolicyName определяет политику отмены по иерархии конфигураций.
// Без конфигурации действует политика с фиксированными ставками
func (u *Usecase) fetchPolicyName(ctx context.Context, res *domain.Reservation) domain.CancellationPolicyName {
	var plan *string
	if res.PlanName != "" {
		plan = ptr.Ptr(res.PlanName)
	}

	cfg, err := u.policies.GetConfigWithHierarchy(ctx, res.ProviderID, ptr.Ptr(res.ResourceID), plan)
	if err != nil {
		if !errors.Is(err, policyconfig.ErrConfigNotFound) {
			u.log.Warn("CancelReservation: failed to fetch policy config for provider_id=%d, using default: %v", res.ProviderID, err)
		}
		return domain.PolicyFlatRate
	}

	if cfg.CancellationPolicy == "" {
		return domain.PolicyFlatRate
	}
	return cfg.CancellationPolicy
}

// isFirstCancellation запрашивает историю отмен участника.
// При недоступности MemberService льгота первой отмены не применяется
func (u *Usecase) isFirstCancellation(ctx context.Context, memberID int64) bool {
	member, err := u.members.GetMemberWithGracefulDegradation(ctx, memberID)
	if err != nil {
		if !errors.Is(err, memberservice.ErrMemberNotFound) {
			u.log.Warn("CancelReservation: member service degraded, first-cancellation waiver disabled for member_id=%d", memberID)
		}
		return false
	}
	return member.IsFirstCancellation()
}

func isSameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
