package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/resilientmind/coaching-platform/internal/domain"
	"github.com/resilientmind/coaching-platform/pkg/dbmetrics"
	"github.com/resilientmind/coaching-platform/pkg/psqlbuilder"
)

// Repository репозиторий недельного расписания и заблокированных дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyRules возвращает все правила недельного расписания,
// отсортированные по дню недели. Пустой результат - не ошибка:
// сервисный слой в этом случае подставляет шаблон по умолчанию.
func (r *Repository) GetWeeklyRules(ctx context.Context) ([]*domain.WeeklyAvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("weekly_availability").
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.WeeklyAvailabilityRule, 0)
	for rows.Next() {
		var rule domain.WeeklyAvailabilityRule
		var dayOfWeek int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&dayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&rule.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeeklyRules - scan row: %v", ErrScanRow, err)
		}

		rule.DayOfWeek = time.Weekday(dayOfWeek)
		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeeklyRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// UpsertWeeklyRule создает или обновляет правило для дня недели.
// День недели уникален, поэтому повторная запись обновляет окно и флаг активности.
func (r *Repository) UpsertWeeklyRule(ctx context.Context, rule *domain.WeeklyAvailabilityRule) (*domain.WeeklyAvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("weekly_availability").
		Columns("day_of_week", "start_time", "end_time", "is_active").
		Values(int(rule.DayOfWeek), rule.StartTime, rule.EndTime, rule.IsActive).
		Suffix(`ON CONFLICT (day_of_week) DO UPDATE
			SET start_time = EXCLUDED.start_time,
			    end_time = EXCLUDED.end_time,
			    is_active = EXCLUDED.is_active,
			    updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeeklyRule - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertWeeklyRule - execute upsert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetBlockedDates возвращает заблокированные даты в диапазоне [from, to]
// включительно, отсортированные по дате
func (r *Repository) GetBlockedDates(ctx context.Context, from, to time.Time) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"blocked_date",
		"reason",
		"created_at",
	).
		From("blocked_dates").
		Where(squirrel.GtOrEq{"blocked_date": from}).
		Where(squirrel.LtOrEq{"blocked_date": to}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlockedDates(rows)
}

// HasBlockedDate проверяет, заблокирована ли конкретная дата.
// Внутри транзакции блокирует найденную строку через FOR UPDATE,
// чтобы удаление блокировки не прошло параллельно с созданием бронирования.
func (r *Repository) HasBlockedDate(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("blocked_dates").
		Where(squirrel.Eq{"blocked_date": date})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockedDate - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockedDate - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// AddBlockedDate блокирует дату для бронирования
func (r *Repository) AddBlockedDate(ctx context.Context, date time.Time, reason *string) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("blocked_date", "reason").
		Values(date, reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	blocked := &domain.BlockedDate{
		Date:   date,
		Reason: reason,
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == "23505" {
			return nil, ErrDateAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: AddBlockedDate - execute insert: %v", ErrExecQuery, err)
	}

	blocked.CreatedAt = createdAt.Time

	return blocked, nil
}

// RemoveBlockedDate снимает блокировку с даты
func (r *Repository) RemoveBlockedDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"blocked_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveBlockedDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}

// scanBlockedDates сканирует результаты запроса в слайс заблокированных дат
func (r *Repository) scanBlockedDates(rows *sql.Rows) ([]*domain.BlockedDate, error) {
	blocked := make([]*domain.BlockedDate, 0)

	for rows.Next() {
		var b domain.BlockedDate
		var createdAt sql.NullTime

		if err := rows.Scan(&b.ID, &b.Date, &b.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scanBlockedDates - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		blocked = append(blocked, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return blocked, nil
}
