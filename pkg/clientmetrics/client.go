package clientmetrics

import (
	"context"
	"time"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
)

// ShiftProviderClient интерфейс оборачиваемого клиента сервиса смен
type ShiftProviderClient interface {
	ListShifts(ctx context.Context) ([]domain.Shift, error)
	BookShift(ctx context.Context, shiftID string) error
	CancelShift(ctx context.Context, shiftID string) error
}

// Recorder интерфейс коллектора метрик внешних вызовов
type Recorder interface {
	ObserveUpstreamRequest(operation, result string, duration time.Duration)
}

const (
	resultOK    = "ok"
	resultError = "error"
)

// Client обёртка клиента сервиса смен, снимающая метрики каждого вызова
type Client struct {
	inner    ShiftProviderClient
	recorder Recorder
}

// Wrap оборачивает клиент сервиса смен коллектором метрик
func Wrap(inner ShiftProviderClient, recorder Recorder) *Client {
	return &Client{
		inner:    inner,
		recorder: recorder,
	}
}

// ListShifts получает коллекцию смен, фиксируя длительность и результат вызова
func (c *Client) ListShifts(ctx context.Context) ([]domain.Shift, error) {
	start := time.Now()
	shifts, err := c.inner.ListShifts(ctx)
	c.observe("list_shifts", err, start)
	return shifts, err
}

// BookShift бронирует смену, фиксируя длительность и результат вызова
func (c *Client) BookShift(ctx context.Context, shiftID string) error {
	start := time.Now()
	err := c.inner.BookShift(ctx, shiftID)
	c.observe("book_shift", err, start)
	return err
}

// CancelShift отменяет бронирование, фиксируя длительность и результат вызова
func (c *Client) CancelShift(ctx context.Context, shiftID string) error {
	start := time.Now()
	err := c.inner.CancelShift(ctx, shiftID)
	c.observe("cancel_shift", err, start)
	return err
}

func (c *Client) observe(operation string, err error, start time.Time) {
	result := resultOK
	if err != nil {
		result = resultError
	}
	c.recorder.ObserveUpstreamRequest(operation, result, time.Since(start))
}
