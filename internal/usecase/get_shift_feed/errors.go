package get_shift_feed

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrFetchFailed возвращается, когда не удалось получить коллекцию смен
	// Отличается от пустой, но успешно полученной коллекции
	ErrFetchFailed = errors.New("failed to fetch shifts")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
