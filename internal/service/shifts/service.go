package shifts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
	"github.com/m04kA/HSP-ShiftService/internal/integrations/shiftprovider"
)

// Service контроллер состояния бронирования
// Владеет кэшем коллекции смен и набором смен с незавершённой мутацией.
// Точки изменения состояния — ровно три: Refresh, Book, Cancel
type Service struct {
	provider ShiftProviderClient
	cache    ShiftCache
	logger   Logger

	// pending — смены с незавершённым book/cancel
	// Мутации разных смен независимы; повторная мутация той же смены отклоняется
	mu      sync.Mutex
	pending map[string]struct{}
}

// NewService создает новый экземпляр контроллера смен
func NewService(
	provider ShiftProviderClient,
	cache ShiftCache,
	logger Logger,
) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		logger:   logger,
		pending:  make(map[string]struct{}),
	}
}

// Refresh запрашивает полную коллекцию смен у сервиса смен и заменяет кэш целиком
// При ошибке кэш остаётся в последнем известном состоянии
func (s *Service) Refresh(ctx context.Context) ([]domain.Shift, error) {
	shifts, err := s.provider.ListShifts(ctx)
	if err != nil {
		s.logger.Error("Refresh: failed to fetch shifts: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	s.cache.ReplaceAll(shifts)
	s.logger.Info("Refresh: fetched %d shifts", len(shifts))

	return shifts, nil
}

// Book бронирует смену через сервис смен
// Успех влечёт перезагрузку коллекции; неуспех оставляет кэш нетронутым.
// Отметка о незавершённой мутации снимается на любом пути выхода
func (s *Service) Book(ctx context.Context, shiftID string) error {
	s.logger.Info("Book: booking shift id=%s", shiftID)

	if err := s.markPending(shiftID); err != nil {
		s.logger.Warn("Book: mutation already in flight for shift id=%s", shiftID)
		return err
	}
	defer s.clearPending(shiftID)

	if err := s.provider.BookShift(ctx, shiftID); err != nil {
		return s.mapMutationError("Book", shiftID, ErrBookFailed, err)
	}

	// Коллекция перечитывается целиком — сервис смен единственный источник истины
	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Error("Book: shift id=%s booked but refresh failed: %v", shiftID, err)
		return err
	}

	s.logger.Info("Book: successfully booked shift id=%s", shiftID)
	return nil
}

// Cancel отменяет бронирование смены через сервис смен
// Предусловия статуса локально не проверяются — ответ сервиса смен
// транслируется как есть
func (s *Service) Cancel(ctx context.Context, shiftID string) error {
	s.logger.Info("Cancel: cancelling shift id=%s", shiftID)

	if err := s.markPending(shiftID); err != nil {
		s.logger.Warn("Cancel: mutation already in flight for shift id=%s", shiftID)
		return err
	}
	defer s.clearPending(shiftID)

	if err := s.provider.CancelShift(ctx, shiftID); err != nil {
		return s.mapMutationError("Cancel", shiftID, ErrCancelFailed, err)
	}

	if _, err := s.Refresh(ctx); err != nil {
		s.logger.Error("Cancel: shift id=%s cancelled but refresh failed: %v", shiftID, err)
		return err
	}

	s.logger.Info("Cancel: successfully cancelled shift id=%s", shiftID)
	return nil
}

// Snapshot возвращает последнюю известную коллекцию смен
func (s *Service) Snapshot() []domain.Shift {
	return s.cache.List()
}

// Loaded возвращает true, если коллекция загружалась хотя бы один раз
func (s *Service) Loaded() bool {
	return s.cache.Loaded()
}

// PendingIDs возвращает отсортированный список смен с незавершённой мутацией
func (s *Service) PendingIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.pending))
	for id := range s.pending {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsPending возвращает true, если по смене идёт незавершённая мутация
func (s *Service) IsPending(shiftID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.pending[shiftID]
	return ok
}

func (s *Service) markPending(shiftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[shiftID]; ok {
		return ErrMutationInFlight
	}
	s.pending[shiftID] = struct{}{}
	return nil
}

func (s *Service) clearPending(shiftID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, shiftID)
}

func (s *Service) mapMutationError(op, shiftID string, fallback, err error) error {
	switch {
	case errors.Is(err, shiftprovider.ErrShiftNotFound):
		s.logger.Warn("%s: shift id=%s not found", op, shiftID)
		return ErrShiftNotFound

	case errors.Is(err, shiftprovider.ErrShiftConflict):
		s.logger.Warn("%s: shift id=%s rejected by provider: %v", op, shiftID, err)
		return fmt.Errorf("%w: %v", ErrShiftConflict, err)

	default:
		s.logger.Error("%s: provider error for shift id=%s: %v", op, shiftID, err)
		return fmt.Errorf("%w: %v", fallback, err)
	}
}
