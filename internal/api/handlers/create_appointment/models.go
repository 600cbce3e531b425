package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProviderID      int64   `json:"providerId"`
	AppointmentTime string  `json:"appointmentTime"` // RFC 3339, например "2025-12-20T14:00:00Z"
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	UserID          int64   `json:"userId"`
	ProviderID      int64   `json:"providerId"`
	AppointmentTime string  `json:"appointmentTime"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	appointmentTime, err := time.Parse(time.RFC3339, r.AppointmentTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:          userID,
		ProviderID:      r.ProviderID,
		AppointmentTime: appointmentTime,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID.String(),
		UserID:          resp.UserID,
		ProviderID:      resp.ProviderID,
		AppointmentTime: resp.AppointmentTime.UTC().Format(time.RFC3339),
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
