package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProviderID int64    `json:"providerId"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Слоты сериализуются как моменты времени в RFC 3339 (UTC)
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.UTC().Format(time.RFC3339))
	}

	return &AvailableSlotsResponse{
		ProviderID: resp.ProviderID,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
