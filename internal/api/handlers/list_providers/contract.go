package list_providers

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/integrations/directory"
)

type DirectoryClient interface {
	ListProviders(ctx context.Context) ([]directory.Provider, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
