package book_shift

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
	msgConflict        = "смена недоступна для бронирования"
	msgMutationPending = "по смене уже идёт операция"
	msgBookFailed      = "не удалось забронировать смену"
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

// Handle POST /api/v1/shifts/{shiftId}/book
// Тело запроса отсутствует — личность сотрудника определяет сервис смен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shiftID := vars["shiftId"]
	if shiftID == "" {
		h.logger.Warn("POST /shifts/{id}/book - Empty shift ID")
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	err := h.service.Book(r.Context(), shiftID)
	if err != nil {
		switch {
		case errors.Is(err, shiftsService.ErrShiftNotFound):
			h.logger.Warn("POST /shifts/{id}/book - Shift not found: shift_id=%s", shiftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, shiftsService.ErrShiftConflict):
			h.logger.Warn("POST /shifts/{id}/book - Rejected by provider: shift_id=%s, error=%v", shiftID, err)
			handlers.RespondConflict(w, msgConflict)

		case errors.Is(err, shiftsService.ErrMutationInFlight):
			h.logger.Warn("POST /shifts/{id}/book - Mutation in flight: shift_id=%s", shiftID)
			handlers.RespondConflict(w, msgMutationPending)

		case errors.Is(err, shiftsService.ErrFetchFailed):
			// Бронирование прошло, но коллекцию перечитать не удалось
			h.logger.Error("POST /shifts/{id}/book - Booked but refresh failed: shift_id=%s, error=%v", shiftID, err)
			handlers.RespondBadGateway(w, msgBookFailed)

		default:
			h.logger.Error("POST /shifts/{id}/book - Failed to book shift: shift_id=%s, error=%v", shiftID, err)
			handlers.RespondBadGateway(w, msgBookFailed)
		}
		return
	}

	h.logger.Info("POST /shifts/{id}/book - Shift booked successfully: shift_id=%s", shiftID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
