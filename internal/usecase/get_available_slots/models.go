package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	ProviderID int64     // ID специалиста во внешнем справочнике
	Date       time.Time // Календарная дата (полночь UTC)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ProviderID int64       // ID специалиста
	Date       time.Time   // Дата, на которую запрашивались слоты
	Slots      []time.Time // Свободные слоты (UTC, по возрастанию)
}
