package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время внутри дня в формате "HH:MM"
// Используется для хранения времени начала слотов и границ рабочего окна.
// Хранится в БД как TIME, в JSON сериализуется как строка "10:00".
type TimeString string

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfDay возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfDay = errors.New("time is out of day bounds")
)

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
// Принимает "HH:MM" и "HH:MM:SS" (секунды отбрасываются)
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) >= 8 {
		// Формат с секундами "09:00:00" - отбрасываем секунды
		s = s[:5]
	}

	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
// Допускает значение 1440 ("24:00") для представления конца суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > 24*60 {
		return "", ErrTimeOutOfDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	if _, err := t.Minutes(); err != nil {
		return err
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, ErrInvalidTimeString
	}

	var hours, minutes int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hours, &minutes); err != nil {
		return 0, ErrInvalidTimeString
	}

	// "24:00" допустимо как граница конца суток
	if hours == 24 && minutes == 0 {
		return 24 * 60, nil
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidTimeString
	}

	return hours*60 + minutes, nil
}

// AddMinutes возвращает новое время, сдвинутое на указанное количество минут
// Возвращает ErrTimeOutOfDay, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// IsBefore проверяет, что время строго раньше other
// Некорректные значения считаются равными (сравнение не падает)
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// IsZero проверяет, что значение не заполнено
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Колонка TIME может приходить как строка "09:00:00" или как time.Time
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}
