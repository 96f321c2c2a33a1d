package cancel_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/infra/storage/policyconfig"
	"github.com/junhyeong9812/hexapass-sub002/internal/infra/storage/reservation"
	"github.com/junhyeong9812/hexapass-sub002/internal/integrations/memberservice"
)

// Фейки зависимостей usecase

type fakeReservationRepo struct {
	reservation *domain.Reservation

	cancelledID     int64
	cancelledStatus domain.ReservationStatus
	cancelledFee    domain.Money
	cancelledReason string
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservation.ErrReservationNotFound
	}
	copied := *f.reservation
	return &copied, nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, status domain.ReservationStatus, fee domain.Money, reason string) error {
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledFee = fee
	f.cancelledReason = reason
	return nil
}

type fakePolicyRepo struct {
	config *domain.ResourcePolicyConfig
}

func (f *fakePolicyRepo) GetConfigWithHierarchy(_ context.Context, _ int64, _ *int64, _ *string) (*domain.ResourcePolicyConfig, error) {
	if f.config == nil {
		return nil, policyconfig.ErrConfigNotFound
	}
	return f.config, nil
}

type fakeMemberClient struct {
	member *memberservice.Member
	err    error
}

func (f *fakeMemberClient) GetMemberWithGracefulDegradation(_ context.Context, _ int64) (*memberservice.Member, error) {
	return f.member, f.err
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

const (
	memberID   = int64(1)
	providerID = int64(100)
)

func mustKRW(t *testing.T, amount int64) domain.Money {
	t.Helper()
	m, err := domain.NewMoneyFromInt(amount, "KRW")
	require.NoError(t, err)
	return m
}

// confirmedReservation бронирование за lead до слота относительно now
func confirmedReservation(t *testing.T, now time.Time, lead time.Duration) *domain.Reservation {
	t.Helper()
	start := now.Add(lead)
	slot, err := domain.NewTimeSlot(start, start.Add(time.Hour))
	require.NoError(t, err)

	return &domain.Reservation{
		ID:            55,
		MemberID:      memberID,
		ResourceID:    10,
		ProviderID:    providerID,
		Slot:          slot,
		Status:        domain.StatusConfirmed,
		PlanName:      "premium",
		OriginalPrice: mustKRW(t, 10000),
		FinalPrice:    mustKRW(t, 10000),
	}
}

func newTestUsecase(repo *fakeReservationRepo, policies *fakePolicyRepo, members *fakeMemberClient, now time.Time) *Usecase {
	return NewUsecase(repo, policies, members, fixedTime{now: now}, nopLogger{})
}

func repeatCanceller() *fakeMemberClient {
	return &fakeMemberClient{member: &memberservice.Member{
		ID:                memberID,
		PlanName:          "premium",
		PlanActive:        true,
		CancellationCount: 2,
	}}
}

// Тесты

func TestExecute_MemberPaysTieredFee(t *testing.T) {
	// Отмена за 23 часа до слота: уровень 20% стандартной таблицы
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{reservation: confirmedReservation(t, now, 23*time.Hour)}
	uc := newTestUsecase(repo, &fakePolicyRepo{}, repeatCanceller(), now)

	resp, err := uc.Execute(context.Background(), Request{ReservationID: 55, UserID: memberID})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelledByMember), resp.Status)
	assert.Equal(t, "2000 KRW", resp.CancellationFee)
	assert.Equal(t, "8000 KRW", resp.Refund)

	assert.Equal(t, int64(55), repo.cancelledID)
	assert.Equal(t, domain.StatusCancelledByMember, repo.cancelledStatus)
	assert.True(t, repo.cancelledFee.Equals(mustKRW(t, 2000)))
}

func TestExecute_EarlyCancellationIsFree(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{reservation: confirmedReservation(t, now, 48*time.Hour)}
	uc := newTestUsecase(repo, &fakePolicyRepo{}, repeatCanceller(), now)

	resp, err := uc.Execute(context.Background(), Request{ReservationID: 55, UserID: memberID})
	require.NoError(t, err)

	assert.Equal(t, "0 KRW", resp.CancellationFee)
	assert.Equal(t, "10000 KRW", resp.Refund)
}

func TestExecute_ProviderCancelsWithoutFee(t *testing.T) {
	// Даже поздняя отмена провайдером бесплатна для участника
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{reservation: confirmedReservation(t, now, time.Hour)}
	uc := newTestUsecase(repo, &fakePolicyRepo{}, repeatCanceller(), now)

	resp, err := uc.Execute(context.Background(), Request{ReservationID: 55, UserID: providerID})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelledByProvider), resp.Status)
	assert.Equal(t, "0 KRW", resp.CancellationFee)
	assert.Equal(t, "10000 KRW", resp.Refund)
	assert.Equal(t, domain.StatusCancelledByProvider, repo.cancelledStatus)
}

func TestExecute_ConfiguredPolicyVetoesCancellation(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{reservation: confirmedReservation(t, now, 24*time.Hour)}
	policies := &fakePolicyRepo{config: &domain.ResourcePolicyConfig{
		ProviderID:         providerID,
		CancellationPolicy: domain.PolicyNoCancellation,
		Currency:           "KRW",
	}}
	uc := newTestUsecase(repo, policies, repeatCanceller(), now)

	_, err := uc.Execute(context.Background(), Request{ReservationID: 55, UserID: memberID})
	assert.ErrorIs(t, err, ErrCancellationNotAllowed)
	assert.Zero(t, repo.cancelledID)
}

func TestExecute_EmergencyExceptionForfeitsPrice(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{reservation: confirmedReservation(t, now, 24*time.Hour)}
	policies := &fakePolicyRepo{config: &domain.ResourcePolicyConfig{
		ProviderID:         providerID,
		CancellationPolicy: domain.PolicyNoCancellation,
		Currency:           "KRW",
	}}
	uc := newTestUsecase(repo, policies, repeatCanceller(), now)

	resp, err := uc.Execute(context.Background(), Request{
		ReservationID: 55,
		UserID:        memberID,
		IsEmergency:   true,
	})
	require.NoError(t, err)

	// Разрешённая чрезвычайная отмена всё равно теряет полную стоимость
	assert.Equal(t, "10000 KRW", resp.CancellationFee)
	assert.Equal(t, "0 KRW", resp.Refund)
}

func TestExecute_FlexiblePolicyWaivesFirstCancellation(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{reservation: confirmedReservation(t, now, 8*time.Hour)}
	policies := &fakePolicyRepo{config: &domain.ResourcePolicyConfig{
		ProviderID:         providerID,
		CancellationPolicy: domain.PolicyFlexible,
		Currency:           "KRW",
	}}
	members := &fakeMemberClient{member: &memberservice.Member{
		ID:                memberID,
		PlanName:          "premium",
		CancellationCount: 0,
	}}
	uc := newTestUsecase(repo, policies, members, now)

	resp, err := uc.Execute(context.Background(), Request{ReservationID: 55, UserID: memberID})
	require.NoError(t, err)
	assert.Equal(t, "0 KRW", resp.CancellationFee)
}

func TestExecute_DegradedMemberServiceDisablesWaiver(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{reservation: confirmedReservation(t, now, 8*time.Hour)}
	policies := &fakePolicyRepo{config: &domain.ResourcePolicyConfig{
		ProviderID:         providerID,
		CancellationPolicy: domain.PolicyFlexible,
		Currency:           "KRW",
	}}
	members := &fakeMemberClient{err: memberservice.ErrServiceDegraded}
	uc := newTestUsecase(repo, policies, members, now)

	resp, err := uc.Execute(context.Background(), Request{ReservationID: 55, UserID: memberID})
	require.NoError(t, err)

	// Без данных об истории льгота не применяется: табличный уровень 20%
	assert.Equal(t, "2000 KRW", resp.CancellationFee)
}

func TestExecute_ReservationNotFound(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	uc := newTestUsecase(&fakeReservationRepo{}, &fakePolicyRepo{}, repeatCanceller(), now)

	_, err := uc.Execute(context.Background(), Request{ReservationID: 55, UserID: memberID})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	repo := &fakeReservationRepo{reservation: confirmedReservation(t, now, 24*time.Hour)}
	uc := newTestUsecase(repo, &fakePolicyRepo{}, repeatCanceller(), now)

	_, err := uc.Execute(context.Background(), Request{ReservationID: 55, UserID: 999})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	res := confirmedReservation(t, now, 24*time.Hour)
	res.Status = domain.StatusCancelledByMember
	repo := &fakeReservationRepo{reservation: res}
	uc := newTestUsecase(repo, &fakePolicyRepo{}, repeatCanceller(), now)

	_, err := uc.Execute(context.Background(), Request{ReservationID: 55, UserID: memberID})
	assert.ErrorIs(t, err, ErrAlreadyFinished)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2026, 3, 13, 11, 0, 0, 0, time.UTC)
	uc := newTestUsecase(&fakeReservationRepo{}, &fakePolicyRepo{}, repeatCanceller(), now)

	_, err := uc.Execute(context.Background(), Request{ReservationID: 0, UserID: memberID})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{ReservationID: 55, UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
