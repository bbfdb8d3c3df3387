package get_shift_feed

import (
	"errors"
	"net/http"

	"github.com/m04kA/HSP-ShiftService/internal/api/handlers"
	"github.com/m04kA/HSP-ShiftService/internal/domain"
	feedUC "github.com/m04kA/HSP-ShiftService/internal/usecase/get_shift_feed"
)

const (
	msgInvalidTab  = "некорректная вкладка: допустимы available и booked"
	msgFetchFailed = "не удалось получить список смен"
)

type Handler struct {
	usecase ShiftFeedUseCase
	logger  Logger
}

func NewHandler(usecase ShiftFeedUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shifts?tab={available|booked}&city={cityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем параметры фильтрации
	tab := domain.TabAvailable
	if tabParam := r.URL.Query().Get("tab"); tabParam != "" {
		tab = domain.Tab(tabParam)
	}

	var cityID *string
	if cityParam := r.URL.Query().Get("city"); cityParam != "" {
		cityID = &cityParam
	}

	resp, err := h.usecase.Execute(r.Context(), &feedUC.Request{
		Tab:    tab,
		CityID: cityID,
	})
	if err != nil {
		switch {
		case errors.Is(err, feedUC.ErrInvalidInput):
			h.logger.Warn("GET /shifts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTab)

		case errors.Is(err, feedUC.ErrFetchFailed):
			h.logger.Error("GET /shifts - Fetch failed: %v", err)
			handlers.RespondBadGateway(w, msgFetchFailed)

		default:
			h.logger.Error("GET /shifts - Failed to build shift feed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shifts - Shift feed built: tab=%s, groups=%d", tab, len(resp.Groups))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
