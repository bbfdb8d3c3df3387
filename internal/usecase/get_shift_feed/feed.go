package get_shift_feed

import (
	"sort"
	"time"

	"github.com/m04kA/HSP-ShiftService/internal/domain"
)

// selectShifts отбирает смены под активную вкладку и фильтр по городу
// Вкладка available: только свободные смены в будущем.
// Вкладка booked: все забронированные, включая прошедшие — история сотруднику
// нужна целиком.
// Порядок исходной коллекции сохраняется (стабильный отбор)
func selectShifts(all []domain.Shift, tab domain.Tab, cityID *string, now time.Time) []domain.Shift {
	selected := make([]domain.Shift, 0, len(all))

	for _, shift := range all {
		if cityID != nil && shift.CityID != *cityID {
			continue
		}

		switch tab {
		case domain.TabAvailable:
			if shift.IsAvailable() && shift.IsFuture(now) {
				selected = append(selected, shift)
			}
		case domain.TabBooked:
			if shift.IsBooked() {
				selected = append(selected, shift)
			}
		}
	}

	return selected
}

// groupByDate раскладывает смены по календарным датам
// Группы идут по возрастанию строки даты (для yyyy-MM-dd лексикографический
// порядок совпадает с хронологическим); внутри группы порядок входной коллекции
func groupByDate(shifts []domain.Shift) [][]domain.Shift {
	buckets := make(map[string][]domain.Shift)
	dates := make([]string, 0)

	for _, shift := range shifts {
		date := shift.Date()
		if _, ok := buckets[date]; !ok {
			dates = append(dates, date)
		}
		buckets[date] = append(buckets[date], shift)
	}

	sort.Strings(dates)

	groups := make([][]domain.Shift, 0, len(dates))
	for _, date := range dates {
		groups = append(groups, buckets[date])
	}
	return groups
}

// cityAvailableCounts считает доступные к бронированию смены по городам
// Город попадает в результат, если встречается в коллекции с любым статусом;
// считаются только свободные смены в будущем. Фильтр по городу не учитывается
func cityAvailableCounts(all []domain.Shift, now time.Time) map[string]int {
	counts := make(map[string]int)

	for _, shift := range all {
		if _, ok := counts[shift.CityID]; !ok {
			counts[shift.CityID] = 0
		}
		if shift.IsAvailable() && shift.IsFuture(now) {
			counts[shift.CityID]++
		}
	}

	return counts
}

// bookedShifts возвращает все забронированные смены коллекции
func bookedShifts(all []domain.Shift) []domain.Shift {
	booked := make([]domain.Shift, 0)
	for _, shift := range all {
		if shift.IsBooked() {
			booked = append(booked, shift)
		}
	}
	return booked
}

// isBookable решает, можно ли предлагать смену к бронированию
// Смена непригодна, если она уже занята, прошла, пересекается с любой
// забронированной сменой или по ней идёт незавершённая мутация.
// Проверка пересечений — линейный проход по забронированным: коллекция
// у одного сотрудника небольшая
func isBookable(shift domain.Shift, booked []domain.Shift, now time.Time, pending map[string]struct{}) bool {
	if !shift.IsAvailable() || !shift.IsFuture(now) {
		return false
	}

	if _, ok := pending[shift.ID]; ok {
		return false
	}

	for i := range booked {
		if booked[i].ID == shift.ID {
			continue
		}
		if shift.Overlaps(&booked[i]) {
			return false
		}
	}

	return true
}
