package list_providers

import "github.com/m04kA/SMC-AppointmentService/internal/integrations/directory"

// ProvidersResponse HTTP response model
type ProvidersResponse struct {
	Providers []directory.Provider `json:"providers"`
}
