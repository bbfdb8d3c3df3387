package shiftprovider

import (
	"time"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
)

// ShiftRecord модель смены на проводе сервиса смен
// Временные границы передаются миллисекундными unix-метками; конвертация в
// доменные time.Time происходит только здесь, на границе интеграции
type ShiftRecord struct {
	ID         string `json:"id"`
	Area       string `json:"area"`
	Booked     bool   `json:"booked"`
	StartTime  int64  `json:"startTime"` // unix millis
	EndTime    int64  `json:"endTime"`   // unix millis
	Position   string `json:"position"`
	Department string `json:"department"`
}

// ToDomain конвертирует запись провайдера в доменную модель
func (r *ShiftRecord) ToDomain() domain.Shift {
	status := domain.StatusAvailable
	if r.Booked {
		status = domain.StatusBooked
	}

	return domain.Shift{
		ID:         r.ID,
		CityID:     r.Area,
		Position:   r.Position,
		Department: r.Department,
		StartTime:  time.UnixMilli(r.StartTime).UTC(),
		EndTime:    time.UnixMilli(r.EndTime).UTC(),
		Status:     status,
	}
}

// ToDomainList конвертирует список записей провайдера
func ToDomainList(records []ShiftRecord) []domain.Shift {
	shifts := make([]domain.Shift, len(records))
	for i := range records {
		shifts[i] = records[i].ToDomain()
	}
	return shifts
}

// ErrorResponse модель ошибки сервиса смен
type ErrorResponse struct {
	Detail string `json:"detail"`
}
