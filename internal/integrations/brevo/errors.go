package brevo

import "errors"

var (
	// ErrNotConfigured возвращается, когда API ключ не задан
	ErrNotConfigured = errors.New("brevo client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("brevo client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Brevo
	ErrInvalidResponse = errors.New("brevo client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Письмо не отправлено, но бронирование уже создано - это не ошибка клиента API
	ErrServiceDegraded = errors.New("brevo unavailable: graceful degradation applied")
)
