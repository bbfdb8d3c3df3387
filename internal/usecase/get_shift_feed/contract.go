package get_shift_feed

import (
	"context"
	"time"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
)

// ShiftController интерфейс контроллера состояния бронирования
type ShiftController interface {
	// Refresh перечитывает коллекцию смен у сервиса смен
	Refresh(ctx context.Context) ([]domain.Shift, error)
	// PendingIDs возвращает смены с незавершённой мутацией
	PendingIDs() []string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
