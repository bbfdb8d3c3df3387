package get_shift_feed

import (
	"time"

	feedUC "github.com/m04kA/HSP-ShiftService/internal/usecase/get_shift_feed"
)

// ShiftFeedResponse HTTP response model
type ShiftFeedResponse struct {
	Tab    string          `json:"tab"`
	CityID *string         `json:"cityId,omitempty"`
	Groups []DateGroupView `json:"groups"`
	Cities []CityCountView `json:"cities"`
}

// DateGroupView группа смен одной даты
type DateGroupView struct {
	Date   string      `json:"date"`
	Shifts []ShiftView `json:"shifts"`
}

// ShiftView смена в ленте
type ShiftView struct {
	ID         string `json:"id"`
	CityID     string `json:"cityId"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
	StartTime  string `json:"startTime"` // RFC 3339
	EndTime    string `json:"endTime"`   // RFC 3339
	Status     string `json:"status"`
	Bookable   bool   `json:"bookable"`
	Pending    bool   `json:"pending"`
}

// CityCountView счётчик доступных смен города
type CityCountView struct {
	CityID          string `json:"cityId"`
	Name            string `json:"name"`
	AvailableShifts int    `json:"availableShifts"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP-модель
func FromUseCaseResponse(resp *feedUC.Response) *ShiftFeedResponse {
	out := &ShiftFeedResponse{
		Tab:    string(resp.Tab),
		CityID: resp.CityID,
		Groups: make([]DateGroupView, 0, len(resp.Groups)),
		Cities: make([]CityCountView, 0, len(resp.Cities)),
	}

	for _, group := range resp.Groups {
		view := DateGroupView{
			Date:   group.Date,
			Shifts: make([]ShiftView, 0, len(group.Shifts)),
		}
		for _, shift := range group.Shifts {
			view.Shifts = append(view.Shifts, ShiftView{
				ID:         shift.ID,
				CityID:     shift.CityID,
				Position:   shift.Position,
				Department: shift.Department,
				StartTime:  shift.StartTime.Format(time.RFC3339),
				EndTime:    shift.EndTime.Format(time.RFC3339),
				Status:     string(shift.Status),
				Bookable:   shift.Bookable,
				Pending:    shift.Pending,
			})
		}
		out.Groups = append(out.Groups, view)
	}

	for _, city := range resp.Cities {
		out.Cities = append(out.Cities, CityCountView{
			CityID:          city.City.ID,
			Name:            city.City.Name,
			AvailableShifts: city.AvailableShifts,
		})
	}

	return out
}
