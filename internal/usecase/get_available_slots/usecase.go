package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	directory       DirectoryClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory DirectoryClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чистое чтение, состояние никогда не меняет
//
// Ошибки справочника (специалист не найден / справочник недоступен) здесь
// сознательно поглощаются: возвращается пустой список слотов, чтобы выдача
// слотов никогда не отвечала 500. Условие логируется для операторов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, date=%s",
		req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Подтверждаем специалиста в справочнике (fail-open)
	if _, err := uc.directory.GetProvider(ctx, req.ProviderID); err != nil {
		uc.logger.Error("GetAvailableSlots: directory lookup failed for provider id=%d, returning empty slot list: %v",
			req.ProviderID, err)
		return &Response{
			ProviderID: req.ProviderID,
			Date:       req.Date,
			Slots:      []time.Time{},
		}, nil
	}

	// 3. Генерируем кандидатов на дату
	candidates := generateDailySlots(req.Date)

	// 4. Загружаем записи специалиста за день (границы дня в UTC)
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appointments, err := uc.appointmentRepo.GetByProviderBetween(ctx, req.ProviderID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 5. Убираем занятые моменты
	slots := filterAvailable(candidates, occupiedInstants(req.Date, appointments))

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for provider=%d, date=%s",
		len(slots), len(candidates), req.ProviderID, req.Date.Format(domain.DateFormat))

	return &Response{
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
