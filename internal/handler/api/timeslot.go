package api

import (
	"net/http"
	"strconv"

	reqdto "roomescape/internal/handler/dto/request"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/handler/httperr"
	"roomescape/internal/usecase/commands"
	"roomescape/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TimeSlotHandler struct {
	cmds commands.TimeSlotCommands
	q    queries.TimeSlotQueries
}

func NewTimeSlotHandler(cmds commands.TimeSlotCommands, q queries.TimeSlotQueries) *TimeSlotHandler {
	return &TimeSlotHandler{cmds: cmds, q: q}
}

// @Summary List time slots
// @Description List every bookable time of day, earliest first
// @Tags times
// @Produce json
// @Success 200 {object} resdto.TimeSlotListResponse
// @Router /times [get]
func (h *TimeSlotHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromTimeSlotViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get time slot
// @Tags times
// @Produce json
// @Param id path int true "Time slot ID"
// @Success 200 {object} resdto.TimeSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /times/{id} [get]
func (h *TimeSlotHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromTimeSlotView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create time slot
// @Tags times
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTimeSlotRequest true "Start time (HH:MM)"
// @Success 201 {object} resdto.TimeSlotResponse
// @Header 201 {string} Location "/times/{id}"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /times [post]
func (h *TimeSlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	result, err := h.cmds.CreateTimeSlot(c.Request.Context(), req.StartAt)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.TimeSlotID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load time slot", nil)
		return
	}
	res, err := resdto.FromTimeSlotView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Header("Location", "/times/"+strconv.FormatInt(view.ID, 10))
	c.JSON(http.StatusCreated, res)
}

// @Summary Delete time slot
// @Description Fails while any reservation still uses the slot
// @Tags times
// @Param id path int true "Time slot ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /times/{id} [delete]
func (h *TimeSlotHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if err := h.cmds.DeleteTimeSlot(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
