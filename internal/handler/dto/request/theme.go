package request

import (
	"time"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/usecase/commands"
	"roomescape/internal/usecase/queries"
)

// Blank values are rejected by the domain, not by binding.
type CreateThemeRequest struct {
	Name        string `json:"name" example:"Prison Break"`
	Description string `json:"description" example:"Escape the cell in 60 minutes"`
	Thumbnail   string `json:"thumbnail" example:"https://example.com/prison.png"`
}

func (r *CreateThemeRequest) ToCommand() commands.CreateThemeRequest {
	return commands.CreateThemeRequest{
		Name:        r.Name,
		Description: r.Description,
		Thumbnail:   r.Thumbnail,
	}
}

type TopThemesRequest struct {
	Count   int    `form:"count" binding:"required"`
	StartAt string `form:"startAt" binding:"required"`
	EndAt   string `form:"endAt" binding:"required"`
}

func (r *TopThemesRequest) ToQuery() (queries.TopThemesQuery, error) {
	var start, end time.Time
	var err error
	if start, err = reservation.ParseDate(r.StartAt); err != nil {
		return queries.TopThemesQuery{}, err
	}
	if end, err = reservation.ParseDate(r.EndAt); err != nil {
		return queries.TopThemesQuery{}, err
	}
	return queries.TopThemesQuery{
		Count:     r.Count,
		StartDate: start,
		EndDate:   end,
	}, nil
}
