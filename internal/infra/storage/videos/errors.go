package videos

import "errors"

var (
	// ErrVideoNotFound возвращается, когда видео не найдено
	ErrVideoNotFound = errors.New("videos.repository: video not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("videos.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("videos.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("videos.repository: failed to scan row")
)
