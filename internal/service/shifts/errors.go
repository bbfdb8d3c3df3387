package shifts

import "errors"

var (
	// ErrFetchFailed возвращается, когда не удалось получить коллекцию смен
	ErrFetchFailed = errors.New("failed to fetch shifts")

	// ErrBookFailed возвращается, когда бронирование не было принято
	ErrBookFailed = errors.New("failed to book shift")

	// ErrCancelFailed возвращается, когда отмена не была принята
	ErrCancelFailed = errors.New("failed to cancel shift")

	// ErrShiftNotFound возвращается, когда сервис смен не знает такую смену
	ErrShiftNotFound = errors.New("shift not found")

	// ErrShiftConflict возвращается, когда сервис смен отклонил изменение
	// по собственным правилам (занята, пересекается, уже началась)
	ErrShiftConflict = errors.New("shift state conflict")

	// ErrMutationInFlight возвращается при попытке повторного изменения смены,
	// пока предыдущее ещё не завершилось
	ErrMutationInFlight = errors.New("shift mutation already in flight")
)
