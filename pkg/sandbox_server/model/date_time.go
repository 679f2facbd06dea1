package model

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Layouts accepted for DateTime. Values without an offset are taken as UTC.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// DateTime is an instant on the wire. It is written in RFC3339 and the time zone
// offset of the parsed value is kept.
type DateTime struct {
	timeVal time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{
		timeVal: t,
	}
}

func NewDateTimeFromUnix(t int64) DateTime {
	return DateTime{
		timeVal: time.Unix(t, 0).UTC(),
	}
}

func NewDateTimeFromString(s string) (DateTime, error) {
	for _, layout := range dateTimeLayouts {
		ts, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return DateTime{timeVal: ts}, nil
		}
	}
	return DateTime{}, fmt.Errorf("invalid date time %q", s)
}

func NewDateTimeFromStringNoError(s string) DateTime {
	dt, err := NewDateTimeFromString(s)
	if err != nil {
		panic(err)
	}
	return dt
}

func (dt DateTime) GetTime() time.Time {
	return dt.timeVal
}

func (dt DateTime) Unix() int64 {
	return dt.timeVal.Unix()
}

func (dt DateTime) IsZero() bool {
	return dt.timeVal.IsZero()
}

func (dt DateTime) String() string {
	return dt.timeVal.Format(time.RFC3339)
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(dt.String())
}

func (dt *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	newDt, err := NewDateTimeFromString(s)
	if err != nil {
		return err
	}
	*dt = newDt
	return nil
}

// Date always use UTC timezone.
type Date struct {
	timeVal time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{
		timeVal: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

func NewDateFromString(t string) (Date, error) {
	ts, err := time.ParseInLocation(time.DateOnly, t, time.UTC)
	if err != nil {
		return Date{}, err
	}
	return Date{
		timeVal: ts,
	}, nil
}

func NewDateFromStringNoError(t string) Date {
	d, err := NewDateFromString(t)
	if err != nil {
		panic(err)
	}
	return d
}

func (dt Date) GetTime() time.Time {
	return dt.timeVal
}

func (dt Date) IsZero() bool {
	return dt.timeVal.IsZero()
}

func (dt Date) AddDays(days int) Date {
	return Date{timeVal: dt.timeVal.AddDate(0, 0, days)}
}

func (dt Date) String() string {
	return dt.timeVal.Format(time.DateOnly)
}

func (dt Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(dt.String())
}

func (dt *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	newDt, err := NewDateFromString(s)
	if err != nil {
		return err
	}
	*dt = newDt
	return nil
}

// TimeOfDay is a wall clock time without date, written as "15:04:05".
type TimeOfDay struct {
	offset time.Duration
}

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{
		offset: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second,
	}
}

func NewTimeOfDayFromString(s string) (TimeOfDay, error) {
	for _, layout := range []string{time.TimeOnly, "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
}

func (t TimeOfDay) String() string {
	return time.Time{}.Add(t.offset).Format(time.TimeOnly)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.offset < other.offset
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	newT, err := NewTimeOfDayFromString(s)
	if err != nil {
		return err
	}
	*t = newT
	return nil
}

// CombineDateTime places the wall clock time on the given date.
func CombineDateTime(d Date, t TimeOfDay) DateTime {
	return NewDateTime(d.timeVal.Add(t.offset))
}
