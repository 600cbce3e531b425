package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// generateDailySlots генерирует кандидатов: один слот в час с 09:00 по 17:00
// включительно в UTC-полуночной системе отсчёта даты, то есть ровно 9 слотов
// на день независимо от специалиста
func generateDailySlots(date time.Time) []time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	slots := make([]time.Time, 0, domain.SlotsPerDay)
	for hour := domain.SlotStartHour; hour <= domain.SlotEndHour; hour++ {
		slots = append(slots, midnight.Add(time.Duration(hour)*time.Hour))
	}
	return slots
}

// occupiedInstants собирает занятые моменты на указанную дату.
// Запись занимает слот, если её календарная дата (UTC) совпадает с date и
// статус не CANCELLED: отменённая запись слот не занимает
func occupiedInstants(date time.Time, appointments []*domain.Appointment) map[time.Time]struct{} {
	occupied := make(map[time.Time]struct{}, len(appointments))

	for _, appointment := range appointments {
		if !appointment.OccupiesSlot() {
			continue
		}
		instant := appointment.AppointmentTime.UTC()
		if !isSameUTCDay(instant, date) {
			continue
		}
		occupied[instant] = struct{}{}
	}

	return occupied
}

// filterAvailable удаляет занятые моменты из списка кандидатов
// Порядок кандидатов (по возрастанию) сохраняется
func filterAvailable(candidates []time.Time, occupied map[time.Time]struct{}) []time.Time {
	available := make([]time.Time, 0, len(candidates))
	for _, slot := range candidates {
		if _, taken := occupied[slot]; taken {
			continue
		}
		available = append(available, slot)
	}
	return available
}

// isSameUTCDay проверяет совпадение календарных дат в UTC
func isSameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
