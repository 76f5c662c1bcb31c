// Package types содержит общие типы данных сервиса.
package types

import (
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString время суток в формате "HH:MM" (например, "14:30").
// Хранится строкой для прозрачной сериализации в JSON и БД.
type TimeString string

// NewTimeString создает TimeString из time.Time.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку формата "HH:MM".
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid time format %q: expected HH:MM", s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// Validate проверяет соответствие формату "HH:MM".
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("invalid time format %q: expected HH:MM", string(t))
	}
	return nil
}

// IsZero сообщает, что значение не задано.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут с начала суток.
// Для некорректного значения возвращает 0.
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore сообщает, что время t раньше other в пределах суток.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter сообщает, что время t позже other в пределах суток.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes возвращает время, сдвинутое на m минут вперед.
// Выход за пределы суток считается ошибкой.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	total := t.Minutes() + m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// At собирает полную метку времени из даты date и времени суток t.
// Часовой пояс берется из date.
func (t TimeString) At(date time.Time) time.Time {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
}

func (t TimeString) String() string {
	return string(t)
}
