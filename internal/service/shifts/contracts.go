package shifts

import (
	"context"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
)

// ShiftProviderClient интерфейс клиента сервиса смен
type ShiftProviderClient interface {
	ListShifts(ctx context.Context) ([]domain.Shift, error)
	BookShift(ctx context.Context, shiftID string) error
	CancelShift(ctx context.Context, shiftID string) error
}

// ShiftCache интерфейс кэша коллекции смен
type ShiftCache interface {
	ReplaceAll(shifts []domain.Shift)
	List() []domain.Shift
	Loaded() bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
