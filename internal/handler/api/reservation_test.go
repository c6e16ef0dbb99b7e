//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/handler/api"
	resdto "roomescape/internal/handler/dto/response"
	"roomescape/internal/usecase/commands"
	"roomescape/internal/usecase/queries"
	"roomescape/tests/common/builder"
	"roomescape/tests/common/httptest"
	"roomescape/tests/common/testutil"
	commandsmock "roomescape/tests/mock/commands"
	queriesmock "roomescape/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/reservations", s.handler.List)
	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations/themes/:themeId", s.handler.Availability)
	s.router.GET("/reservations/:id", s.handler.Get)
	s.router.DELETE("/reservations/:id", s.handler.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

type testCaseCreateReservation struct {
	name         string
	mutate       func(m map[string]any)
	setupMock    func()
	expectStatus int
	expectInBody string
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 with nested time and theme", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), commands.CreateReservationRequest{
			Name:    "Sun",
			Date:    time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC),
			TimeID:  1,
			ThemeID: 1,
		}).Return(&commands.CreateReservationResult{ReservationID: view.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		expected := resdto.ReservationResponse{
			ID:   1,
			Name: "Sun",
			Date: "2030-01-15",
			Time: resdto.TimeSlotResponse{ID: 1, StartAt: "10:00"},
			Theme: resdto.ThemeResponse{
				ID:          1,
				Name:        "Prison Break",
				Description: "Escape the cell in 60 minutes",
				Thumbnail:   "https://example.com/prison.png",
			},
		}
		if diff := cmp.Diff(expected, body); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/reservations/1"})
	})

	cases := []testCaseCreateReservation{
		{
			name:         "missing timeId",
			mutate:       testutil.Field("timeId", nil),
			expectStatus: http.StatusBadRequest,
			expectInBody: "Invalid request",
		},
		{
			name:         "missing date",
			mutate:       testutil.Field("date", nil),
			expectStatus: http.StatusBadRequest,
			expectInBody: "Invalid request",
		},
		{
			name:         "malformed date",
			mutate:       testutil.Field("date", "15/01/2030"),
			expectStatus: http.StatusBadRequest,
			expectInBody: "YYYY-MM-DD",
		},
		{
			name:   "blank name",
			mutate: testutil.Field("name", " "),
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, reservation.ErrBlankName)
			},
			expectStatus: http.StatusBadRequest,
			expectInBody: "name",
		},
		{
			name: "past slot",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, reservation.ErrPastReservation)
			},
			expectStatus: http.StatusBadRequest,
			expectInBody: "already passed",
		},
		{
			name: "unknown time slot",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, timeslot.ErrTimeSlotNotFound)
			},
			expectStatus: http.StatusNotFound,
			expectInBody: "time slot not found",
		},
		{
			name: "unknown theme",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, theme.ErrThemeNotFound)
			},
			expectStatus: http.StatusNotFound,
			expectInBody: "theme not found",
		},
		{
			name: "slot already taken",
			setupMock: func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(nil, reservation.ErrDuplicateReservation)
			},
			expectStatus: http.StatusConflict,
			expectInBody: "already reserved",
		},
	}

	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}
			var muts []func(map[string]any)
			if tc.mutate != nil {
				muts = append(muts, tc.mutate)
			}
			requestMap := testutil.DtoMap(s.T(), reqBody, muts...)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectStatus, tc.expectInBody)
		})
	}
}

// ================================================================================
// TestList / TestGet / TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: wraps reservations", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.ReservationView{builder.NewReservationBuilder().BuildView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil)

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Reservations, 1)
		s.Equal("2030-01-15", body.Reservations[0].Date)
		s.Equal("10:00", body.Reservations[0].Time.StartAt)
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("error: 404 for unknown reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, reservation.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/42", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("success: 204 even for an unknown id", func() {
		s.mockCommands.EXPECT().DeleteReservation(gomock.Any(), int64(999)).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/999", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for negative id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/-3", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "positive integer")
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *ReservationHandlerTestSuite) TestAvailability() {
	date := time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)

	s.Run("success: every slot with its booked flag", func() {
		s.mockQueries.EXPECT().Availability(gomock.Any(), int64(2), date).Return([]*queries.AvailabilityView{
			{TimeID: 1, StartAt: "10:00", AlreadyBooked: true},
			{TimeID: 2, StartAt: "12:00", AlreadyBooked: false},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/themes/2?date=2030-01-15", nil)

		var body resdto.AvailabilityListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		expected := resdto.AvailabilityListResponse{Times: []resdto.AvailabilityResponse{
			{TimeID: 1, StartAt: "10:00", AlreadyBooked: true},
			{TimeID: 2, StartAt: "12:00", AlreadyBooked: false},
		}}
		if diff := cmp.Diff(expected, body); diff != "" {
			s.T().Errorf("availability mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 without date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/themes/2", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/themes/2?date=tomorrow", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: 400 on non-numeric theme id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/themes/x?date=2030-01-15", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "positive integer")
	})
}
