package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/junhyeong9812/hexapass-sub002/internal/domain"
	reservationRepo "github.com/junhyeong9812/hexapass-sub002/internal/infra/storage/reservation"
	"github.com/junhyeong9812/hexapass-sub002/internal/service/reservations/models"
)

// Service сервис для чтения бронирований
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь видит только своё бронирование
// или бронирования своих ресурсов, если он провайдер
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if reservation.MemberID != userID && reservation.ProviderID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetMemberReservations получает историю бронирований участника
// Опционально фильтрует по статусу
func (s *Service) GetMemberReservations(ctx context.Context, req *models.GetMemberReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetMemberReservations: fetching reservations for member=%d, status=%v", req.MemberID, req.Status)

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetMemberReservations: invalid status=%s for member=%d", *req.Status, req.MemberID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByMemberID(ctx, req.MemberID, domainStatus)
	if err != nil {
		s.logger.Error("GetMemberReservations: repository error for member=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: GetMemberReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMemberReservations: successfully fetched %d reservations for member=%d", len(reservations), req.MemberID)
	return models.FromDomainReservationList(reservations), nil
}

// GetResourceReservations получает бронирования ресурса с гибкой фильтрацией
// Доступно только провайдеру ресурса
func (s *Service) GetResourceReservations(ctx context.Context, req *models.GetResourceReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetResourceReservations: fetching reservations for resource=%d, user=%d", req.ResourceID, req.UserID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetResourceReservations: invalid filter for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByResourceWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetResourceReservations: repository error for resource=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: GetResourceReservations - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа: запрашивающий должен быть провайдером ресурса
	for _, r := range reservations {
		if r.ProviderID != req.UserID {
			s.logger.Warn("GetResourceReservations: access denied for user=%d to resource=%d", req.UserID, req.ResourceID)
			return nil, ErrAccessDenied
		}
	}

	s.logger.Info("GetResourceReservations: successfully fetched %d reservations for resource=%d", len(reservations), req.ResourceID)
	return models.FromDomainReservationList(reservations), nil
}
