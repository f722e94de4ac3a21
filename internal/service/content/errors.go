package content

import "errors"

var (
	// ErrVideoNotFound возвращается, когда видео не найдено
	ErrVideoNotFound = errors.New("video not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
