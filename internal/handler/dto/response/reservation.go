package response

import (
	"roomescape/internal/domain/reservation"
	"roomescape/internal/usecase/queries"
)

type ReservationResponse struct {
	ID    int64            `json:"id" example:"1"`
	Name  string           `json:"name" example:"Sun"`
	Date  string           `json:"date" example:"2026-12-24"`
	Time  TimeSlotResponse `json:"time"`
	Theme ThemeResponse    `json:"theme"`
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

type AvailabilityResponse struct {
	TimeID        int64  `json:"timeId" example:"1"`
	StartAt       string `json:"startAt" example:"17:00"`
	AlreadyBooked bool   `json:"alreadyBooked"`
}

type AvailabilityListResponse struct {
	Times []AvailabilityResponse `json:"times"`
}

func FromReservationView(v *queries.ReservationView) ReservationResponse {
	return ReservationResponse{
		ID:   v.ID,
		Name: v.Name,
		Date: reservation.FormatDate(v.Date),
		Time: TimeSlotResponse{
			ID:      v.Time.ID,
			StartAt: v.Time.StartAt,
		},
		Theme: ThemeResponse{
			ID:          v.Theme.ID,
			Name:        v.Theme.Name,
			Description: v.Theme.Description,
			Thumbnail:   v.Theme.Thumbnail,
		},
	}
}

func FromReservationViews(views []*queries.ReservationView) *ReservationListResponse {
	items := make([]ReservationResponse, len(views))
	for i, v := range views {
		items[i] = FromReservationView(v)
	}
	return &ReservationListResponse{Reservations: items}
}

func FromAvailabilityViews(views []*queries.AvailabilityView) *AvailabilityListResponse {
	items := make([]AvailabilityResponse, len(views))
	for i, v := range views {
		items[i] = AvailabilityResponse{
			TimeID:        v.TimeID,
			StartAt:       v.StartAt,
			AlreadyBooked: v.AlreadyBooked,
		}
	}
	return &AvailabilityListResponse{Times: items}
}
