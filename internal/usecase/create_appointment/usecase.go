package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	directoryClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/directory"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo   AppointmentRepository
	directory         DirectoryClient
	txManager         TransactionManager
	timeProvider      TimeProvider
	pendingBlocksSlot bool
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
// pendingBlocksSlot управляет тем, резервирует ли PENDING-запись слот при
// предварительной проверке; уникальный индекс в БД в любом случае
// ограничен статусом CONFIRMED
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory DirectoryClient,
	txManager TransactionManager,
	pendingBlocksSlot bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo:   appointmentRepo,
		directory:         directory,
		txManager:         txManager,
		timeProvider:      &RealTimeProvider{},
		pendingBlocksSlot: pendingBlocksSlot,
		logger:            logger,
	}
}

// Execute выполняет use case создания записи
//
// Двухуровневая защита от двойного бронирования:
//  1. предварительная проверка занятости слота внутри SERIALIZABLE транзакции
//     (закрывает большинство гонок до вставки);
//  2. частичный уникальный индекс (provider_id, appointment_time) WHERE
//     status = 'CONFIRMED' как авторитетный сигнал; его нарушение транслируется
//     в тот же ErrSlotTaken.
//
// Только на индекс и полагается корректность: два запроса могут пройти
// проверку (1) до того, как любой из них завершит вставку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, provider=%d, time=%s",
		req.UserID, req.ProviderID, req.AppointmentTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	instant := req.AppointmentTime.UTC()

	// 2. Подтверждаем существование специалиста в справочнике.
	// Здесь недоступность справочника НЕ поглощается: бронирование к
	// неподтверждённому специалисту не выполняется
	if _, err := uc.directory.GetProvider(ctx, req.ProviderID); err != nil {
		if errors.Is(err, directoryClient.ErrProviderNotFound) {
			uc.logger.Warn("CreateAppointment: provider id=%d not found in directory", req.ProviderID)
		} else {
			uc.logger.Error("CreateAppointment: directory lookup failed for provider id=%d: %v", req.ProviderID, err)
		}
		return nil, ErrProviderNotFound
	}

	var result *domain.Appointment

	// 3. Проверка занятости и вставка в одной SERIALIZABLE транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		occupying := []domain.AppointmentStatus{domain.StatusConfirmed}
		if uc.pendingBlocksSlot {
			occupying = append(occupying, domain.StatusPending)
		}

		count, err := uc.appointmentRepo.CountOccupyingAt(txCtx, req.ProviderID, instant, occupying)
		if err != nil {
			uc.logger.Error("CreateAppointment: availability check failed: %v", err)
			return fmt.Errorf("%w: failed to check slot availability: %v", ErrInternal, err)
		}

		if count > 0 {
			uc.logger.Warn("CreateAppointment: slot taken (pre-check), provider=%d, time=%s",
				req.ProviderID, instant.Format(time.RFC3339))
			return ErrSlotTaken
		}

		appointment := &domain.Appointment{
			UserID:          req.UserID,
			ProviderID:      req.ProviderID,
			AppointmentTime: instant,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				// Конкурентная вставка прошла раньше, индекс сработал
				uc.logger.Warn("CreateAppointment: slot taken (constraint), provider=%d, time=%s",
					req.ProviderID, instant.Format(time.RFC3339))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ProviderID:      result.ProviderID,
		AppointmentTime: result.AppointmentTime,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
