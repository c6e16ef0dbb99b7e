package request

type CreateTimeSlotRequest struct {
	StartAt string `json:"startAt" binding:"required" example:"17:00"`
}
