package cancel_shift

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HSP-ShiftService/internal/api/handlers"
	shiftsService "github.com/m04kA/HSP-ShiftService/internal/service/shifts"
)

const (
	msgInvalidShiftID  = "некорректный ID смены"
	msgNotFound        = "смена не найдена"
	msgConflict        = "смена не может быть отменена"
	msgMutationPending = "по смене уже идёт операция"
	msgCancelFailed    = "не удалось отменить бронирование"
)

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/shifts/{shiftId}/cancel
// Отмена не проверяет пересечения и статус локально — решает сервис смен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shiftID := vars["shiftId"]
	if shiftID == "" {
		h.logger.Warn("POST /shifts/{id}/cancel - Empty shift ID")
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	err := h.service.Cancel(r.Context(), shiftID)
	if err != nil {
		switch {
		case errors.Is(err, shiftsService.ErrShiftNotFound):
			h.logger.Warn("POST /shifts/{id}/cancel - Shift not found: shift_id=%s", shiftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, shiftsService.ErrShiftConflict):
			h.logger.Warn("POST /shifts/{id}/cancel - Rejected by provider: shift_id=%s, error=%v", shiftID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, shiftsService.ErrMutationInFlight):
			h.logger.Warn("POST /shifts/{id}/cancel - Mutation in flight: shift_id=%s", shiftID)
			handlers.RespondConflict(w, msgMutationPending)

		default:
			h.logger.Error("POST /shifts/{id}/cancel - Failed to cancel shift: shift_id=%s, error=%v", shiftID, err)
			handlers.RespondBadGateway(w, msgCancelFailed)
		}
		return
	}

	h.logger.Info("POST /shifts/{id}/cancel - Shift cancelled successfully: shift_id=%s", shiftID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
