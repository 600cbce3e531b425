package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с существующими записями на приём
// Создание записей живёт в usecase create_appointment
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Область видимости применяется на уровне запроса: не-админ видит только
// свои записи, чужая запись неотличима от несуществующей
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, scope domain.Scope) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%d (admin=%t)", id, scope.UserID, scope.Admin)

	appointment, err := s.appointmentRepo.GetByID(ctx, id, scope)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List получает записи в пределах области видимости
// Админ видит все записи, обычный пользователь только свои
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d (admin=%t), status=%v",
		req.Scope.UserID, req.Scope.Admin, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter for user=%d: %v", req.Scope.UserID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Scope.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for user=%d", len(appointments), req.Scope.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus обновляет статус записи с валидацией перехода
// Переход проверяется по таблице допустимых переходов, недопустимый
// (например COMPLETED -> PENDING) отклоняется с ErrInvalidTransition
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s by user=%d",
		id, req.Status, req.Scope.UserID)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	return s.transition(ctx, id, newStatus, req.Scope)
}

// Cancel отменяет запись, синоним UpdateStatus(id, CANCELLED, scope)
// Отмена это смена статуса, строка из БД не удаляется
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, scope domain.Scope) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%d", id, scope.UserID)
	return s.transition(ctx, id, domain.StatusCancelled, scope)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, newStatus domain.AppointmentStatus, scope domain.Scope) (*models.AppointmentResponse, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id, scope)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(appointment.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for appointment id=%s",
			appointment.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, newStatus)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found during update", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%s moved %s -> %s", id, appointment.Status, newStatus)

	appointment.Status = newStatus
	return models.FromDomainAppointment(appointment), nil
}
