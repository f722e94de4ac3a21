package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/pkg/dbmetrics"
	"github.com/resilientmind/coaching-platform/pkg/psqlbuilder"
)

// Repository репозиторий административных настроек сайта
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все настройки, отсортированные по ключу
func (r *Repository) GetAll(ctx context.Context) ([]*domain.SiteSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingColumns...).
		From("site_settings").
		OrderBy("key ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.SiteSetting, 0)
	for rows.Next() {
		setting, err := scanSetting(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetByKey возвращает настройку по ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.SiteSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingColumns...).
		From("site_settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	var setting domain.SiteSetting
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&setting.ID,
		&setting.Key,
		&setting.Value,
		&setting.Description,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan setting: %v", ErrScanRow, err)
	}

	setting.CreatedAt = createdAt.Time
	setting.UpdatedAt = updatedAt.Time

	return &setting, nil
}

// Upsert создает или обновляет настройку по ключу
func (r *Repository) Upsert(ctx context.Context, setting *domain.SiteSetting) (*domain.SiteSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("site_settings").
		Columns("key", "value", "description").
		Values(setting.Key, setting.Value, setting.Description).
		Suffix(`ON CONFLICT (key) DO UPDATE
			SET value = EXCLUDED.value,
			    description = COALESCE(EXCLUDED.description, site_settings.description),
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&setting.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	setting.CreatedAt = createdAt.Time
	setting.UpdatedAt = updatedAt.Time

	return setting, nil
}

// Delete удаляет настройку по ключу
func (r *Repository) Delete(ctx context.Context, key string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("site_settings").
		Where(squirrel.Eq{"key": key}).
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
		return ErrSettingNotFound
	}

	return nil
}

// settingColumns единый порядок колонок для SELECT и сканирования
var settingColumns = []string{
	"id",
	"key",
	"value",
	"description",
	"created_at",
	"updated_at",
}

func scanSetting(rows *sql.Rows) (*domain.SiteSetting, error) {
	var setting domain.SiteSetting
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&setting.ID,
		&setting.Key,
		&setting.Value,
		&setting.Description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanSetting - scan row: %v", ErrScanRow, err)
	}

	setting.CreatedAt = createdAt.Time
	setting.UpdatedAt = updatedAt.Time

	return &setting, nil
}
