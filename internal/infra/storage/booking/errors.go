package booking

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	// (exclusion constraint, unique violation или serialization failure)
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("booking.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

// Коды ошибок PostgreSQL, означающие конфликт при конкурентной записи
const (
	pgSerializationFailure = "40001"
	pgUniqueViolation      = "23505"
	pgExclusionViolation   = "23P01"
)

// IsConflictErr проверяет, является ли ошибка БД конфликтом записи:
// нарушение exclusion/unique констрейнта или откат serializable транзакции.
// Экспортируется для классификации ошибок, приходящих не из репозитория:
// проигравшая serializable транзакция может упасть уже на COMMIT
func IsConflictErr(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case pgSerializationFailure, pgUniqueViolation, pgExclusionViolation:
		return true
	}
	return false
}
