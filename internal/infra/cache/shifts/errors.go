package shifts

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена отсутствует в кэше
	ErrShiftNotFound = errors.New("shift not found in cache")

	// ErrNotLoaded возвращается, когда коллекция ещё ни разу не загружалась
	ErrNotLoaded = errors.New("shift collection not loaded")
)
