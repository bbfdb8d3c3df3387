package domain

import "time"

// ShiftStatus represents the booking status of a shift
type ShiftStatus string

const (
	StatusAvailable ShiftStatus = "available"
	StatusBooked    ShiftStatus = "booked"
)

// Shift represents a schedulable work slot in a hospital
// StartTime/EndTime are absolute instants (UTC); the calendar date is derived,
// never stored separately
type Shift struct {
	ID         string
	CityID     string
	Position   string
	Department string
	StartTime  time.Time
	EndTime    time.Time
	Status     ShiftStatus
}

// IsAvailable returns true if the shift has not been booked
func (s *Shift) IsAvailable() bool {
	return s.Status == StatusAvailable
}

// IsBooked returns true if the shift has been booked
func (s *Shift) IsBooked() bool {
	return s.Status == StatusBooked
}

// Date returns the calendar date of the shift in yyyy-MM-dd form (UTC)
func (s *Shift) Date() string {
	return s.StartTime.UTC().Format(DateFormat)
}

// IsFuture returns true if the shift starts strictly after now
func (s *Shift) IsFuture(now time.Time) bool {
	return s.StartTime.After(now)
}

// Overlaps проверяет пересечение двух смен по правилу полуоткрытых интервалов
// Пересечение есть, только если смены приходятся на одну календарную дату И
// интервалы [start, end) действительно накладываются друг на друга
//
// Примеры:
// - Смена 09:00-12:00, смена 12:00-15:00 → НЕТ пересечения (граничат)
// - Смена 09:00-13:00, смена 12:00-16:00 → ЕСТЬ пересечение (12:00-13:00)
//
// Смена нулевой длительности (start == end) не пересекается ни с чем.
// Функция симметрична: a.Overlaps(b) == b.Overlaps(a)
func (s *Shift) Overlaps(other *Shift) bool {
	if s.Date() != other.Date() {
		return false
	}

	// Используем строгие неравенства, чтобы граничные случаи не считались пересечением
	return s.StartTime.Before(other.EndTime) && s.EndTime.After(other.StartTime)
}
