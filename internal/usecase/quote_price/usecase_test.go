package quote_price

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/infra/storage/policyconfig"
	"github.com/junhyeong9812/hexapass-sub002/internal/integrations/memberservice"
	"github.com/junhyeong9812/hexapass-sub002/pkg/ptr"
)

// Фейки зависимостей usecase

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

var testNow = time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC)

func validRequest() Request {
	return Request{
		MemberID:   7,
		ResourceID: 3,
		ProviderID: 1,
		SlotStart:  time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		SlotEnd:    time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
		BasePrice:  "50000",
		Currency:   "KRW",
	}
}

func activeMember() *memberservice.Member {
	return &memberservice.Member{
		ID:                    7,
		PlanName:              "premium",
		PlanActive:            true,
		CompletedReservations: 12,
	}
}

func newUsecase(policies *fakePolicyRepo, members *fakeMemberClient) *Usecase {
	return NewUsecase(policies, members, fixedTime{now: testNow}, nopLogger{})
}

// Тесты

func TestExecute_PlanDiscountWithCapAndFeePreview(t *testing.T) {
	policies := &fakePolicyRepo{config: &domain.ResourcePolicyConfig{
		ProviderID:          1,
		CancellationPolicy:  domain.PolicyFlatRate,
		PlanDiscountRate:    0.2,
		MinPriceForDiscount: 10000,
		MaxDiscountAmount:   ptr.Ptr(5000.0),
		Currency:            "KRW",
	}}
	members := &fakeMemberClient{member: activeMember()}

	resp, err := newUsecase(policies, members).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "50000 KRW", resp.OriginalPrice)
	assert.Equal(t, "45000 KRW", resp.FinalPrice)
	require.Len(t, resp.Discounts, 1)
	assert.Contains(t, resp.Discounts[0], "plan discount")
	assert.NotEmpty(t, resp.CancellationPolicy)

	require.Len(t, resp.FeePreview, 5)
	assert.Equal(t, "48h0m0s", resp.FeePreview[0].LeadTime)
	assert.Equal(t, "0 KRW", resp.FeePreview[0].Fee)
	assert.Equal(t, "0 KRW", resp.FeePreview[1].Fee)     // 24h
	assert.Equal(t, "9000 KRW", resp.FeePreview[2].Fee)  // 6h
	assert.Equal(t, "22500 KRW", resp.FeePreview[3].Fee) // 2h
	assert.Equal(t, "36000 KRW", resp.FeePreview[4].Fee) // 1h
}

func TestExecute_WelcomeDiscountForFirstReservation(t *testing.T) {
	members := &fakeMemberClient{member: &memberservice.Member{
		ID:                    7,
		PlanName:              "basic",
		PlanActive:            true,
		CompletedReservations: 0,
	}}

	resp, err := newUsecase(&fakePolicyRepo{}, members).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "47500 KRW", resp.FinalPrice)
	require.Len(t, resp.Discounts, 1)
	assert.Contains(t, resp.Discounts[0], "welcome discount")
}

func TestExecute_NoConfigQuotesBasePrice(t *testing.T) {
	members := &fakeMemberClient{member: activeMember()}

	resp, err := newUsecase(&fakePolicyRepo{}, members).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "50000 KRW", resp.FinalPrice)
	assert.Empty(t, resp.Discounts)
}

func TestExecute_StrictPolicyPreviewReflectsSameDayVeto(t *testing.T) {
	policies := &fakePolicyRepo{config: &domain.ResourcePolicyConfig{
		ProviderID:         1,
		CancellationPolicy: domain.PolicyStrict,
		Currency:           "KRW",
	}}
	members := &fakeMemberClient{member: activeMember()}

	resp, err := newUsecase(policies, members).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.FeePreview, 5)
	assert.Equal(t, "5000 KRW", resp.FeePreview[0].Fee)  // 48h
	assert.Equal(t, "15000 KRW", resp.FeePreview[1].Fee) // 24h
	assert.Equal(t, "30000 KRW", resp.FeePreview[2].Fee) // 6h, same day but above the floor
	assert.Equal(t, "45000 KRW", resp.FeePreview[3].Fee) // 2h, exactly at the floor
	// При запасе меньше двух часов отмена в тот же день запрещена,
	// поэтому превью показывает полную цену, как и реальная отмена
	assert.Equal(t, "50000 KRW", resp.FeePreview[4].Fee) // 1h
}

func TestExecute_NoCancellationPolicyForfeitsEveryLead(t *testing.T) {
	policies := &fakePolicyRepo{config: &domain.ResourcePolicyConfig{
		ProviderID:         1,
		CancellationPolicy: domain.PolicyNoCancellation,
		Currency:           "KRW",
	}}
	members := &fakeMemberClient{member: activeMember()}

	resp, err := newUsecase(policies, members).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, resp.FeePreview, 5)
	for _, entry := range resp.FeePreview {
		assert.Equal(t, "50000 KRW", entry.Fee)
	}
}

func TestExecute_DegradedMemberServiceQuotesBasePrice(t *testing.T) {
	members := &fakeMemberClient{err: memberservice.ErrServiceDegraded}

	resp, err := newUsecase(&fakePolicyRepo{}, members).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "50000 KRW", resp.FinalPrice)
	assert.Empty(t, resp.Discounts)
}

func TestExecute_MemberNotFound(t *testing.T) {
	members := &fakeMemberClient{err: memberservice.ErrMemberNotFound}

	resp, err := newUsecase(&fakePolicyRepo{}, members).Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrMemberNotFound)
	assert.Nil(t, resp)
}

func TestExecute_InvalidSlot(t *testing.T) {
	req := validRequest()
	req.SlotEnd = req.SlotStart

	resp, err := newUsecase(&fakePolicyRepo{}, &fakeMemberClient{member: activeMember()}).
		Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidSlot)
	assert.Nil(t, resp)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero member id", func(r *Request) { r.MemberID = 0 }},
		{"zero resource id", func(r *Request) { r.ResourceID = 0 }},
		{"zero provider id", func(r *Request) { r.ProviderID = 0 }},
		{"missing slot", func(r *Request) { r.SlotStart = time.Time{} }},
		{"missing price", func(r *Request) { r.BasePrice = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			resp, err := newUsecase(&fakePolicyRepo{}, &fakeMemberClient{member: activeMember()}).
				Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
		})
	}
}
