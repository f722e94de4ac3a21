package get_bookable_dates

import "time"

// Request модель запроса календарной доступности
type Request struct {
	From time.Time // Начало диапазона (включительно)
	To   time.Time // Конец диапазона (включительно)
}

// Response модель ответа с доступностью по датам
type Response struct {
	From  time.Time
	To    time.Time
	Dates []DateAvailability
}

// DateAvailability доступность одной даты для бронирования
type DateAvailability struct {
	Date     time.Time
	Bookable bool
}
