package shiftprovider

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена в сервисе смен
	ErrShiftNotFound = errors.New("shift not found")

	// ErrShiftConflict возвращается, когда сервис смен отклонил изменение
	// (смена уже забронирована, пересекается с другой или уже началась)
	ErrShiftConflict = errors.New("shift state conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("shiftprovider client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("shiftprovider client: invalid response")
)
