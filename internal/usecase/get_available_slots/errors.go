package get_available_slots

import "errors"

var (
	// ErrUnknownSessionType возвращается при неизвестном типе сессии
	ErrUnknownSessionType = errors.New("unknown session type")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает окно advance booking
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
