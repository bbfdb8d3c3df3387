package get_shift_feed

import (
	"context"

	feedUC "github.com/m04kA/HSP-ShiftService/internal/usecase/get_shift_feed"
)

type ShiftFeedUseCase interface {
	Execute(ctx context.Context, req *feedUC.Request) (*feedUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
