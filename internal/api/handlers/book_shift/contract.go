package book_shift

import "context"

type ShiftService interface {
	Book(ctx context.Context, shiftID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
