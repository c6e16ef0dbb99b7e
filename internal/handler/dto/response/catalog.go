package response

import (
	"roomescape/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TimeSlotResponse struct {
	ID      int64  `json:"id" example:"1"`
	StartAt string `json:"startAt" example:"17:00"`
}

type TimeSlotListResponse struct {
	Times []TimeSlotResponse `json:"times"`
}

type ThemeResponse struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

type ThemeListResponse struct {
	Themes []ThemeResponse `json:"themes"`
}

func FromTimeSlotView(v *queries.TimeSlotView) (TimeSlotResponse, error) {
	var res TimeSlotResponse
	if err := copier.Copy(&res, v); err != nil {
		return TimeSlotResponse{}, err
	}
	return res, nil
}

func FromTimeSlotViews(views []*queries.TimeSlotView) (*TimeSlotListResponse, error) {
	times := make([]TimeSlotResponse, len(views))
	for i, v := range views {
		res, err := FromTimeSlotView(v)
		if err != nil {
			return nil, err
		}
		times[i] = res
	}
	return &TimeSlotListResponse{Times: times}, nil
}

func FromThemeView(v *queries.ThemeView) (ThemeResponse, error) {
	var res ThemeResponse
	if err := copier.Copy(&res, v); err != nil {
		return ThemeResponse{}, err
	}
	return res, nil
}

func FromThemeViews(views []*queries.ThemeView) (*ThemeListResponse, error) {
	themes := make([]ThemeResponse, len(views))
	for i, v := range views {
		res, err := FromThemeView(v)
		if err != nil {
			return nil, err
		}
		themes[i] = res
	}
	return &ThemeListResponse{Themes: themes}, nil
}

// FromRankedThemeViews keeps rank order and drops the counts.
func FromRankedThemeViews(ranked []*queries.RankedThemeView) (*ThemeListResponse, error) {
	views := make([]*queries.ThemeView, len(ranked))
	for i, r := range ranked {
		views[i] = &r.ThemeView
	}
	return FromThemeViews(views)
}
