package utils

import (
	"FoodWasteLogger/domain"
	"time"
)

// DateOf truncates t to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Today() time.Time {
	return DateOf(time.Now())
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// DaysBetween returns the signed number of calendar days from "from" to "to".
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

func AddDays(t time.Time, days int) time.Time {
	return DateOf(t).AddDate(0, 0, days)
}
