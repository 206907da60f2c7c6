package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout формат календарной даты в API и в БД
const DateLayout = "2006-01-02"

// Date календарный день без времени и часового пояса.
// В JSON сериализуется как "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate обрезает время до полуночи UTC
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

// AddDays возвращает дату со сдвигом на n дней
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time.AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool { return d.Time.Before(o.Time) }
func (d Date) After(o Date) bool  { return d.Time.After(o.Time) }
func (d Date) Equal(o Date) bool  { return d.Time.Equal(o.Time) }

// DaysUntil количество дней от d до o (может быть отрицательным)
func (d Date) DaysUntil(o Date) int {
	return int(o.Time.Sub(d.Time).Hours() / 24)
}

func (d Date) String() string {
	return d.Time.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	*d = parsed
	return nil
}

// Value сохраняет дату как time.Time
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan читает date/timestamp колонку (postgres отдает time.Time, sqlite может отдать строку)
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	}
	return fmt.Errorf("cannot scan %T into Date", value)
}

func (d *Date) scanString(s string) error {
	if len(s) >= len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// GormDataType тип колонки для AutoMigrate
func (Date) GormDataType() string {
	return "date"
}
