package create_appointment

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание записи
type Request struct {
	UserID          int64     // ID пользователя (владелец записи)
	ProviderID      int64     // ID специалиста во внешнем справочнике
	AppointmentTime time.Time // Момент приёма, сравнивается и хранится в UTC
	Notes           *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID // ID созданной записи
	UserID          int64     // ID пользователя
	ProviderID      int64     // ID специалиста
	AppointmentTime time.Time // Момент приёма (UTC)
	Status          string    // Статус записи
	Notes           *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
