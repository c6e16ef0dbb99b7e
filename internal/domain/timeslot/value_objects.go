package timeslot

import (
	"fmt"
	"strings"
	"time"
)

const Layout = "15:04"

// StartAt is a time of day with minute precision.
type StartAt struct {
	hour   int
	minute int
}

func ParseStartAt(s string) (StartAt, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return StartAt{}, ErrInvalidStartAt
	}
	return StartAt{hour: t.Hour(), minute: t.Minute()}, nil
}

func NewStartAt(hour, minute int) (StartAt, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return StartAt{}, ErrInvalidStartAt
	}
	return StartAt{hour: hour, minute: minute}, nil
}

func (s StartAt) Hour() int   { return s.hour }
func (s StartAt) Minute() int { return s.minute }

func (s StartAt) String() string {
	return fmt.Sprintf("%02d:%02d", s.hour, s.minute)
}

// On places the time of day on the civil date of day, in loc.
func (s StartAt) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, s.hour, s.minute, 0, 0, loc)
}
