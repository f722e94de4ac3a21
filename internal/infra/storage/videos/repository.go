package videos

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/pkg/dbmetrics"
	"github.com/resilientmind/coaching-platform/pkg/psqlbuilder"
)

// Repository репозиторий видео-библиотеки программы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория видео
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWithFilter возвращает видео по фильтру модулей.
// Интро-видео добавляются в выборку независимо от модулей, если запрошены.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.VideoFilter) ([]*domain.Video, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(videoColumns...).
		From("videos").
		OrderBy("module ASC, week_number ASC, id ASC")

	if len(filter.Modules) > 0 {
		moduleStrings := make([]string, len(filter.Modules))
		for i, m := range filter.Modules {
			moduleStrings[i] = string(m)
		}
		if filter.IncludeIntros {
			selectBuilder = selectBuilder.Where(squirrel.Or{
				squirrel.Eq{"module": moduleStrings},
				squirrel.Eq{"is_intro": true},
			})
		} else {
			selectBuilder = selectBuilder.Where(squirrel.Eq{"module": moduleStrings})
		}
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVideos(rows)
}

// Create добавляет видео в библиотеку
func (r *Repository) Create(ctx context.Context, video *domain.Video) (*domain.Video, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("videos").
		Columns("title", "description", "module", "week_number", "video_url", "is_intro").
		Values(video.Title, video.Description, video.Module, video.WeekNumber, video.VideoURL, video.IsIntro).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&video.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	video.CreatedAt = createdAt.Time
	video.UpdatedAt = updatedAt.Time

	return video, nil
}

// Delete удаляет видео из библиотеки
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("videos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVideoNotFound
	}

	return nil
}

// videoColumns единый порядок колонок для SELECT и сканирования
var videoColumns = []string{
	"id",
	"title",
	"description",
	"module",
	"week_number",
	"video_url",
	"is_intro",
	"created_at",
	"updated_at",
}

// scanVideos сканирует результаты запроса в слайс видео
func (r *Repository) scanVideos(rows *sql.Rows) ([]*domain.Video, error) {
	result := make([]*domain.Video, 0)

	for rows.Next() {
		var video domain.Video
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&video.ID,
			&video.Title,
			&video.Description,
			&video.Module,
			&video.WeekNumber,
			&video.VideoURL,
			&video.IsIntro,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVideos - scan row: %v", ErrScanRow, err)
		}

		video.CreatedAt = createdAt.Time
		video.UpdatedAt = updatedAt.Time

		result = append(result, &video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVideos - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
