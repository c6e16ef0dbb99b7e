package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const microsPerSecond = int64(time.Second / time.Microsecond)

func TextToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

// DateToPgtype keeps only the civil date of t; the location is dropped.
func DateToPgtype(t time.Time) pgtype.Date {
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) time.Time {
	if !pd.Valid {
		return time.Time{}
	}
	y, m, d := pd.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeOfDayToPgtype stores hour and minute of t as a TIME value.
func TimeOfDayToPgtype(hour, minute int) pgtype.Time {
	micros := (int64(hour)*3600 + int64(minute)*60) * microsPerSecond
	return pgtype.Time{Microseconds: micros, Valid: true}
}

// TimeOfDayFromPgtype returns hour and minute; seconds are truncated.
func TimeOfDayFromPgtype(pt pgtype.Time) (hour, minute int) {
	if !pt.Valid {
		return 0, 0
	}
	secs := pt.Microseconds / microsPerSecond
	return int(secs / 3600), int(secs % 3600 / 60)
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
