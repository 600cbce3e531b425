package list_providers

import (
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/directory"
)

const msgDirectoryUnavailable = "справочник специалистов временно недоступен"

type Handler struct {
	directory DirectoryClient
	logger    Logger
}

func NewHandler(directory DirectoryClient, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/providers
// Прямое проксирование справочника, записи из БД не затрагиваются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	providers, err := h.directory.ListProviders(r.Context())
	if err != nil {
		h.logger.Error("GET /providers - Directory request failed: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, msgDirectoryUnavailable)
		return
	}

	if providers == nil {
		providers = []directory.Provider{}
	}

	handlers.RespondJSON(w, http.StatusOK, &ProvidersResponse{Providers: providers})
}
