package domain

// Слоты фиксированные: один слот в час, с 09:00 по 17:00 UTC включительно,
// независимо от специалиста
const (
	SlotStartHour = 9
	SlotEndHour   = 17
	SlotsPerDay   = SlotEndHour - SlotStartHour + 1
)

// Ограничения на входные данные
const (
	MaxNotesLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
