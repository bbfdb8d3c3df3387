package get_shift_feed

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
	shiftsService "github.com/m04kA/HSP-ShiftService/internal/service/shifts"
)

// UseCase use case построения ленты смен
type UseCase struct {
	controller   ShiftController
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(controller ShiftController, logger Logger) *UseCase {
	return &UseCase{
		controller:   controller,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения ленты смен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetShiftFeed: tab=%s, city=%v", req.Tab, req.CityID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetShiftFeed: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Перечитываем коллекцию у сервиса смен
	// Неудача — отдельное состояние ошибки, а не пустая лента
	all, err := uc.controller.Refresh(ctx)
	if err != nil {
		if errors.Is(err, shiftsService.ErrFetchFailed) {
			uc.logger.Error("GetShiftFeed: fetch failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		uc.logger.Error("GetShiftFeed: refresh error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Отбираем смены под вкладку и фильтр по городу
	selected := selectShifts(all, req.Tab, req.CityID, now)

	// 5. Метаданные отображения: пересечения считаются относительно всех
	// забронированных смен коллекции, незавершённые мутации — от контроллера
	booked := bookedShifts(all)
	pending := make(map[string]struct{})
	for _, id := range uc.controller.PendingIDs() {
		pending[id] = struct{}{}
	}

	// 6. Группируем по датам
	groups := make([]DateGroup, 0)
	for _, bucket := range groupByDate(selected) {
		group := DateGroup{
			Date:   bucket[0].Date(),
			Shifts: make([]ShiftView, 0, len(bucket)),
		}
		for _, shift := range bucket {
			_, isPending := pending[shift.ID]
			group.Shifts = append(group.Shifts, ShiftView{
				ID:         shift.ID,
				CityID:     shift.CityID,
				Position:   shift.Position,
				Department: shift.Department,
				StartTime:  shift.StartTime,
				EndTime:    shift.EndTime,
				Status:     shift.Status,
				Bookable:   isBookable(shift, booked, now, pending),
				Pending:    isPending,
			})
		}
		groups = append(groups, group)
	}

	// 7. Счётчики по городам — всегда по нефильтрованной коллекции
	counts := cityAvailableCounts(all, now)
	cities := make([]CityCount, 0, len(counts))
	for cityID, count := range counts {
		cities = append(cities, CityCount{
			City:            domain.CityFromArea(cityID),
			AvailableShifts: count,
		})
	}
	sort.Slice(cities, func(i, j int) bool {
		return cities[i].City.Name < cities[j].City.Name
	})

	uc.logger.Info("GetShiftFeed: %d groups, %d cities for tab=%s", len(groups), len(cities), req.Tab)

	return &Response{
		Tab:    req.Tab,
		CityID: req.CityID,
		Groups: groups,
		Cities: cities,
	}, nil
}
