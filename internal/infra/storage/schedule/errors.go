package schedule

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило недельного расписания не найдено
	ErrRuleNotFound = errors.New("schedule.repository: weekly rule not found")

	// ErrBlockedDateNotFound возвращается, когда заблокированная дата не найдена
	ErrBlockedDateNotFound = errors.New("schedule.repository: blocked date not found")

	// ErrDateAlreadyBlocked возвращается при повторной блокировке той же даты
	ErrDateAlreadyBlocked = errors.New("schedule.repository: date already blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
