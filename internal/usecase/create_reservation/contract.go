package create_reservation

import (
	"context"
	"time"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	"github.com/junhyeong9812/hexapass-sub002/internal/integrations/memberservice"
)

// ReservationRepository - интерфейс для работы с хранилищем бронирований
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByResourceWithFilter(ctx context.Context, filter domain.ResourceReservationsFilter) ([]*domain.Reservation, error)
	CountActiveByMember(ctx context.Context, memberID int64) (int, error)
}

// PolicyConfigRepository - интерфейс для чтения конфигурации политик ресурса
type PolicyConfigRepository interface {
	GetConfigWithHierarchy(ctx context.Context, providerID int64, resourceID *int64, planName *string) (*domain.ResourcePolicyConfig, error)
}

// MemberServiceClient - интерфейс для получения данных участника
type MemberServiceClient interface {
	GetMemberWithGracefulDegradation(ctx context.Context, memberID int64) (*memberservice.Member, error)
}

// TransactionManager - интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider - интерфейс для получения текущего времени
// Позволяет подменять время в тестах
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider - реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
