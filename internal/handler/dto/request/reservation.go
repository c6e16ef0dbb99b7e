package request

import (
	"roomescape/internal/domain/reservation"
	"roomescape/internal/usecase/commands"
)

type CreateReservationRequest struct {
	Name    string `json:"name" example:"Sun"`
	Date    string `json:"date" binding:"required" example:"2026-12-24"`
	TimeID  int64  `json:"timeId" binding:"required,min=1" example:"1"`
	ThemeID int64  `json:"themeId" binding:"required,min=1" example:"1"`
}

func (r *CreateReservationRequest) ToCommand() (commands.CreateReservationRequest, error) {
	date, err := reservation.ParseDate(r.Date)
	if err != nil {
		return commands.CreateReservationRequest{}, err
	}
	return commands.CreateReservationRequest{
		Name:    r.Name,
		Date:    date,
		TimeID:  r.TimeID,
		ThemeID: r.ThemeID,
	}, nil
}

type AvailabilityRequest struct {
	Date string `form:"date" binding:"required"`
}
