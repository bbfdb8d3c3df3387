package get_shift_feed

import (
	"time"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
)

// Request модель запроса ленты смен
type Request struct {
	Tab    domain.Tab // Активная вкладка: available | booked
	CityID *string    // Фильтр по городу (nil — все города)
}

// Response модель ответа с лентой смен
type Response struct {
	Tab    domain.Tab  // Вкладка, для которой построена лента
	CityID *string     // Применённый фильтр по городу
	Groups []DateGroup // Группы смен по датам, даты по возрастанию
	Cities []CityCount // Счётчики доступных смен по всем городам коллекции
}

// DateGroup группа смен одной календарной даты
type DateGroup struct {
	Date   string      // yyyy-MM-dd
	Shifts []ShiftView // Смены в порядке исходной коллекции
}

// ShiftView смена с метаданными отображения
type ShiftView struct {
	ID         string
	CityID     string
	Position   string
	Department string
	StartTime  time.Time
	EndTime    time.Time
	Status     domain.ShiftStatus
	Bookable   bool // Доступна к бронированию: свободна, в будущем, без пересечений, без мутации
	Pending    bool // По смене идёт незавершённый book/cancel
}

// CityCount счётчик доступных к бронированию смен города
// Счётчик игнорирует активный фильтр по городу: сумма по всем городам —
// это счётчик "All Cities"
type CityCount struct {
	City            domain.City
	AvailableShifts int
}
