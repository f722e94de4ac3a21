package create_booking

import "errors"

// Ошибки делятся на две группы, которые API слой маппит в разные статусы:
// конфликт слота (занят другим бронированием) и нарушение политики
// бронирования (дата/время не проходят правила расписания).
var (
	// ErrSlotConflict возвращается, когда слот пересекается с существующим
	// scheduled бронированием
	ErrSlotConflict = errors.New("slot conflicts with an existing booking")

	// ErrUnknownSessionType возвращается при неизвестном типе сессии
	ErrUnknownSessionType = errors.New("unknown session type")

	// ErrDateInPast возвращается при попытке бронирования на прошедшую дату
	ErrDateInPast = errors.New("booking date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает окно advance booking
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrDayNotAvailable возвращается, когда для дня недели нет активного правила
	ErrDayNotAvailable = errors.New("day is not available for booking")

	// ErrDateBlocked возвращается, когда дата точечно заблокирована админом
	ErrDateBlocked = errors.New("date is blocked")

	// ErrOutsideWorkingHours возвращается, когда слот не помещается в рабочее окно дня
	ErrOutsideWorkingHours = errors.New("slot is outside working hours")

	// ErrTooLateToBook возвращается при нарушении минимального lead time
	ErrTooLateToBook = errors.New("too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
