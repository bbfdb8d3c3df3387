package shiftprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с сервисом смен
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса смен
// Таймаут клиента — единственная политика обрыва вызова: истёкший таймаут
// неотличим от любой другой транспортной ошибки
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListShifts получает полную коллекцию смен
func (c *Client) ListShifts(ctx context.Context) ([]domain.Shift, error) {
	url := fmt.Sprintf("%s/shifts", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var records []ShiftRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("ListShifts: received %d shifts from provider", len(records))
	return ToDomainList(records), nil
}

// BookShift бронирует смену по ID
// Тело запроса не передаётся — личность сотрудника определяется на стороне сервиса
func (c *Client) BookShift(ctx context.Context, shiftID string) error {
	return c.mutateShift(ctx, shiftID, "book")
}

// CancelShift отменяет бронирование смены по ID
func (c *Client) CancelShift(ctx context.Context, shiftID string) error {
	return c.mutateShift(ctx, shiftID, "cancel")
}

func (c *Client) mutateShift(ctx context.Context, shiftID, action string) error {
	url := fmt.Sprintf("%s/shifts/%s/%s", c.baseURL, shiftID, action)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Любое 2xx-тело означает успех
		return nil

	case resp.StatusCode == http.StatusNotFound:
		return ErrShiftNotFound

	case resp.StatusCode == http.StatusBadRequest:
		// Сервис смен отвечает 400 с полем detail, когда бронирование нарушает
		// его собственные правила (уже забронирована, пересечение, смена началась)
		var errResp ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Detail == "" {
			return fmt.Errorf("%w: %s rejected", ErrShiftConflict, action)
		}
		return fmt.Errorf("%w: %s", ErrShiftConflict, errResp.Detail)

	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
