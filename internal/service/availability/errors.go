package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда конец окна не позже начала
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrDateAlreadyBlocked возвращается при повторной блокировке даты
	ErrDateAlreadyBlocked = errors.New("date is already blocked")

	// ErrBlockedDateNotFound возвращается, когда заблокированная дата не найдена
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
