package api

import (
	"net/http"
	"strconv"

	"roomescape/internal/domain/reservation"
	reqdto "roomescape/internal/handler/dto/request"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/handler/httperr"
	"roomescape/internal/usecase/commands"
	"roomescape/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary List reservations
// @Tags reservations
// @Produce json
// @Success 200 {object} resdto.ReservationListResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Availability for a theme
// @Description Every time slot with whether it is already booked for the theme on the date
// @Tags reservations
// @Produce json
// @Param themeId path int true "Theme ID"
// @Param date query string true "Date, YYYY-MM-DD"
// @Success 200 {object} resdto.AvailabilityListResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations/themes/{themeId} [get]
func (h *ReservationHandler) Availability(c *gin.Context) {
	themeID, err := parseIDParam(c, "themeId")
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	var req reqdto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	date, err := reservation.ParseDate(req.Date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	views, err := h.q.Availability(c.Request.Context(), themeID, date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityViews(views))
}

// @Summary Create reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationResponse
// @Header 201 {string} Location "/reservations/{id}"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	result, err := h.cmds.CreateReservation(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ReservationID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.Header("Location", "/reservations/"+strconv.FormatInt(view.ID, 10))
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Delete reservation
// @Description Deleting an unknown id also succeeds
// @Tags reservations
// @Param id path int true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if err := h.cmds.DeleteReservation(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
