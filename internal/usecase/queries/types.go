package queries

import "time"

type TimeSlotView struct {
	ID      int64  `json:"id"`
	StartAt string `json:"startAt"`
}

type ThemeView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

// ReservationView carries the booked date as a civil date (midnight UTC).
type ReservationView struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Date  time.Time    `json:"date"`
	Time  TimeSlotView `json:"time"`
	Theme ThemeView    `json:"theme"`
}

// AvailabilityView is one time slot's booking state for a theme on a date.
type AvailabilityView struct {
	TimeID        int64  `json:"timeId"`
	StartAt       string `json:"startAt"`
	AlreadyBooked bool   `json:"alreadyBooked"`
}

type RankedThemeView struct {
	ThemeView
	ReservationCount int64 `json:"reservationCount"`
}
