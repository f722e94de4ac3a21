package get_bookable_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRangeTooLarge возвращается, когда запрошенный диапазон превышает лимит календаря
	ErrRangeTooLarge = errors.New("date range is too large")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
