package get_available_slots

import (
	"time"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
	getAvailableSlots "github.com/m04kA/Zonomo-CartService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date          string          `json:"date"`
	ProductID     string          `json:"productId"`
	DurationHours int             `json:"durationHours"`
	Counts        DayPartCounts   `json:"counts"`
	Slots         []AvailableSlot `json:"slots"`
}

// DayPartCounts количество слотов по частям дня
type DayPartCounts struct {
	Morning   int `json:"MORNING"`
	Afternoon int `json:"AFTERNOON"`
	Evening   int `json:"EVENING"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Label     string `json:"label"` // "9:00 AM - 10:00 AM", значение для selectedTimeSlot
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	DayPart   string `json:"dayPart,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Label:     slot.Label,
			StartTime: slot.Start.Format(domain.TimeFormat),
			EndTime:   formatEnd(slot.Start, slot.End),
			DayPart:   string(slot.DayPart),
		}
	}

	return &AvailableSlotsResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		ProductID:     resp.ProductID,
		DurationHours: resp.DurationHours,
		Counts: DayPartCounts{
			Morning:   resp.Counts[domain.DayPartMorning],
			Afternoon: resp.Counts[domain.DayPartAfternoon],
			Evening:   resp.Counts[domain.DayPartEvening],
		},
		Slots: slots,
	}
}

// formatEnd форматирует конец слота, полночь следующего дня выводится как 24:00
func formatEnd(start, end time.Time) string {
	if end.YearDay() != start.YearDay() && end.Hour() == 0 && end.Minute() == 0 {
		return "24:00"
	}
	return end.Format(domain.TimeFormat)
}

// ToUseCaseRequest создает запрос use case из параметров запроса
// Дата интерпретируется в часовом поясе бронирований loc.
func ToUseCaseRequest(productID, dateStr, dayPartStr string, loc *time.Location) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, loc)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		ProductID: productID,
		Date:      date,
	}

	if dayPartStr != "" {
		dayPart, err := domain.ParseDayPart(dayPartStr)
		if err != nil {
			return nil, err
		}
		req.DayPart = &dayPart
	}

	return req, nil
}
