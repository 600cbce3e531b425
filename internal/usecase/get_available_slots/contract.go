package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/directory"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByProviderBetween получает все записи специалиста в интервале [from, to)
	GetByProviderBetween(ctx context.Context, providerID int64, from, to time.Time) ([]*domain.Appointment, error)
}

// DirectoryClient интерфейс клиента справочника специалистов
type DirectoryClient interface {
	GetProvider(ctx context.Context, id int64) (*directory.Provider, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
