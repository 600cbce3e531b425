package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// Appointment represents a reservation of one provider's time at one instant
type Appointment struct {
	ID              uuid.UUID
	UserID          int64
	ProviderID      int64 // ID специалиста во внешнем справочнике, не FK в локальную БД
	AppointmentTime time.Time
	Status          AppointmentStatus
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// OccupiesSlot returns true if the appointment counts as occupying its slot
// for availability purposes. Cancelled appointments free the slot; everything
// else (PENDING, CONFIRMED, COMPLETED) keeps it occupied.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsTerminal returns true if no further transitions are allowed from the status
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// transitions таблица допустимых переходов статусов
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// CanTransition reports whether the status machine allows from -> to
func CanTransition(from, to AppointmentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ParseStatus converts a string into AppointmentStatus, validating it
func ParseStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return AppointmentStatus(s), true
	}
	return "", false
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	Scope  Scope              // Область видимости (владелец или админ)
	Status *AppointmentStatus // Фильтр по статусу (опционально)
}
