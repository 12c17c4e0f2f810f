package get_available_slots

import (
	"time"

	"github.com/m04kA/Zonomo-CartService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProductID string          // ID услуги
	Date      time.Time       // Дата для получения слотов (без времени)
	DayPart   *domain.DayPart // Фильтр по части дня, nil - все слоты
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date          time.Time              // Дата, на которую запрашивались слоты
	ProductID     string                 // ID услуги
	DurationHours int                    // Длительность услуги в часах
	Counts        map[domain.DayPart]int // Количество слотов по частям дня (все три ключа)
	Slots         []Slot                 // Слоты (с учетом фильтра по части дня)
}

// Slot модель временного слота
type Slot struct {
	Start   time.Time      // Начало слота
	End     time.Time      // Конец слота (последний слот диапазона может быть короче)
	Label   string         // "9:00 AM - 10:00 AM"
	DayPart domain.DayPart // Часть дня, пусто для слотов до 06:00
}
