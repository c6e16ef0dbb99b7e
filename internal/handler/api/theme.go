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

type ThemeHandler struct {
	cmds commands.ThemeCommands
	q    queries.ThemeQueries
}

func NewThemeHandler(cmds commands.ThemeCommands, q queries.ThemeQueries) *ThemeHandler {
	return &ThemeHandler{cmds: cmds, q: q}
}

// @Summary List themes
// @Tags themes
// @Produce json
// @Success 200 {object} resdto.ThemeListResponse
// @Router /themes [get]
func (h *ThemeHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromThemeViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Most booked themes
// @Description Themes ranked by reservations dated within [startAt, endAt]; ties go to the lower id
// @Tags themes
// @Produce json
// @Param count query int true "Maximum number of themes (capped at 100)"
// @Param startAt query string true "First date, YYYY-MM-DD"
// @Param endAt query string true "Last date, YYYY-MM-DD"
// @Success 200 {object} resdto.ThemeListResponse
// @Failure 400 {object} httperr.Response
// @Router /themes/top [get]
func (h *ThemeHandler) Top(c *gin.Context) {
	var req reqdto.TopThemesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	tq, err := req.ToQuery()
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	ranked, err := h.q.Top(c.Request.Context(), tq)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRankedThemeViews(ranked)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get theme
// @Tags themes
// @Produce json
// @Param id path int true "Theme ID"
// @Success 200 {object} resdto.ThemeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /themes/{id} [get]
func (h *ThemeHandler) Get(c *gin.Context) {
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
	res, err := resdto.FromThemeView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create theme
// @Tags themes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateThemeRequest true "Theme"
// @Success 201 {object} resdto.ThemeResponse
// @Header 201 {string} Location "/themes/{id}"
// @Failure 400 {object} httperr.Response
// @Router /themes [post]
func (h *ThemeHandler) Create(c *gin.Context) {
	var req reqdto.CreateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalidRequest(c, err)
		return
	}
	result, err := h.cmds.CreateTheme(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), result.ThemeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load theme", nil)
		return
	}
	res, err := resdto.FromThemeView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Header("Location", "/themes/"+strconv.FormatInt(view.ID, 10))
	c.JSON(http.StatusCreated, res)
}

// @Summary Delete theme
// @Description Fails while any reservation still uses the theme
// @Tags themes
// @Param id path int true "Theme ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /themes/{id} [delete]
func (h *ThemeHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if err := h.cmds.DeleteTheme(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
