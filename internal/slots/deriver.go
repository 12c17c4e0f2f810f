package slots

import (
	"time"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// dayPartBoundary полуинтервал [startHour, endHour) части дня
type dayPartBoundary struct {
	part      domain.DayPart
	startHour int
	endHour   int
}

// dayPartTable единая таблица границ частей дня, порядок важен для классификации
var dayPartTable = []dayPartBoundary{
	{part: domain.DayPartMorning, startHour: 6, endHour: 12},
	{part: domain.DayPartAfternoon, startHour: 12, endHour: 16},
	{part: domain.DayPartEvening, startHour: 16, endHour: 24},
}

// SlotsForDate генерирует слоты на конкретную дату по недельному расписанию услуги
//
// Диапазоны обрабатываются в исходном порядке, без сортировки и слияния:
// пересекающиеся диапазоны дают пересекающиеся слоты.
// Последний слот диапазона обрезается по его границе, а не отбрасывается.
//
// Предусловие: availability прошла domain.Availability.Validate.
func SlotsForDate(availability domain.Availability, date time.Time, durationHours int) []domain.Slot {
	result := make([]domain.Slot, 0)

	// Нулевая или отрицательная длительность - нарушение предусловия, но цикл не должен зависнуть
	if durationHours <= 0 {
		return result
	}

	// Если на этот день недели расписания нет - услуга в этот день не оказывается
	day, ok := availability.ForDay(domain.WeekdayOf(date))
	if !ok {
		return result
	}

	step := time.Duration(durationHours) * time.Hour

	for _, r := range day.TimeSlots {
		current, err := r.StartTime.On(date)
		if err != nil {
			continue
		}
		end, err := r.EndTime.On(date)
		if err != nil {
			continue
		}

		for current.Before(end) {
			slotEnd := current.Add(step)
			if slotEnd.After(end) {
				slotEnd = end
			}

			if current.Before(slotEnd) {
				result = append(result, domain.Slot{Start: current, End: slotEnd})
			}

			current = slotEnd
		}
	}

	return result
}

// ClassifyHour возвращает часть дня для часа начала слота
// Берется первая часть дня (MORNING, AFTERNOON, EVENING), чей интервал содержит час.
// Слоты до 06:00 не относятся ни к одной части дня.
func ClassifyHour(hour int) (domain.DayPart, bool) {
	for _, b := range dayPartTable {
		if hour >= b.startHour && hour < b.endHour {
			return b.part, true
		}
	}
	return "", false
}

// Classify возвращает часть дня слота по часу его начала
func Classify(slot domain.Slot) (domain.DayPart, bool) {
	return ClassifyHour(slot.Start.Hour())
}

// DayPartCounts считает количество слотов в каждой части дня
// В результате всегда присутствуют все три части дня.
func DayPartCounts(availability domain.Availability, date time.Time, durationHours int) map[domain.DayPart]int {
	counts := make(map[domain.DayPart]int, len(domain.DayParts))
	for _, part := range domain.DayParts {
		counts[part] = 0
	}

	for _, slot := range SlotsForDate(availability, date, durationHours) {
		if part, ok := Classify(slot); ok {
			counts[part]++
		}
	}

	return counts
}

// SlotsInDayPart возвращает слоты на дату, относящиеся к указанной части дня
func SlotsInDayPart(
	availability domain.Availability,
	date time.Time,
	durationHours int,
	dayPart domain.DayPart,
) []domain.Slot {
	result := make([]domain.Slot, 0)

	for _, slot := range SlotsForDate(availability, date, durationHours) {
		if part, ok := Classify(slot); ok && part == dayPart {
			result = append(result, slot)
		}
	}

	return result
}

// FindSlot ищет слот на дату по его текстовой метке ("9:00 AM - 10:00 AM")
func FindSlot(availability domain.Availability, date time.Time, durationHours int, label string) (domain.Slot, bool) {
	for _, slot := range SlotsForDate(availability, date, durationHours) {
		if slot.Label() == label {
			return slot, true
		}
	}
	return domain.Slot{}, false
}
