package checkout

import "errors"

var (
	// ErrNotConfigured возвращается, когда API ключ не задан
	ErrNotConfigured = errors.New("checkout client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("checkout client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платёжного провайдера
	ErrInvalidResponse = errors.New("checkout client: invalid response")
)
