//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"ticketgate/internal/domain/user"
	"ticketgate/internal/handler/api"
	resdto "ticketgate/internal/handler/dto/response"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase"
	"ticketgate/internal/usecase/commands"
	"ticketgate/internal/usecase/queries"
	"ticketgate/tests/common/builder"
	"ticketgate/tests/common/httptest"
	"ticketgate/tests/common/testutil"
	commandsmock "ticketgate/tests/mock/commands"
	queriesmock "ticketgate/tests/mock/queries"
	usecasemock "ticketgate/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockCommands   *commandsmock.MockBookingCommands
	mockValidation *commandsmock.MockValidationCommands
	mockQueries    *queriesmock.MockBookingQueries
	mockArtifacts  *usecasemock.MockArtifactAccess
	handler        *api.BookingHandler
	currentUser    uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockValidation = commandsmock.NewMockValidationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockArtifacts = usecasemock.NewMockArtifactAccess(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockValidation, s.mockQueries, s.mockArtifacts)
	s.currentUser = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.currentUser)
		c.Set("user_role", user.RoleUser)
		c.Next()
	}

	// The QR and gate-scan endpoints authenticate on their own terms.
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMyBookings)
	s.router.GET("/bookings/validate/:payload", s.handler.ValidateScan)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/artifact", authMiddleware, s.handler.RetryArtifact)
	s.router.GET("/bookings/:id/qr", s.handler.GetArtifact)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.UserID = s.currentUser
	})
	reqBody := bb.BuildCreateRequestDTO()
	returnView := bb.BuildView()

	s.Run("success: returns 200 OK with the confirmed booking", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), commands.CreateBookingRequest{EventID: bb.EventID, Quantity: bb.Quantity}, s.currentUser).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("confirmed", response.Status)
		s.Equal(bb.Quantity, response.Quantity)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request when required fields are missing", func() {
		for _, field := range []string{"event_id", "quantity"} {
			s.Run("missing "+field, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown event",
				commandsError:  errs.ErrEventNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Event not found",
			},
			{
				name:           "insufficient seats",
				commandsError:  errs.ErrInsufficientSeats,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Not enough seats available",
			},
			{
				name:           "artifact generation failed",
				commandsError:  errs.ErrArtifactGeneration,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "can be retried",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.currentUser).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	url := "/bookings"

	s.Run("success: returns 200 OK with the caller's bookings only", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.currentUser }).BuildView(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.currentUser }).BuildView(),
		}
		s.mockQueries.EXPECT().ListUserBookings(gomock.Any(), s.currentUser).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK for the owner", func() {
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.UserID = s.currentUser
		}).BuildView()
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID, s.currentUser).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID, s.currentUser).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden for someone else's booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), bookingID, s.currentUser).
			Return(nil, errs.ErrAccessDenied).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *BookingHandlerTestSuite) TestRetryArtifact() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/artifact"

	s.Run("success: returns 200 OK with the regenerated booking", func() {
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.UserID = s.currentUser
		}).BuildView()
		s.mockCommands.EXPECT().RetryArtifact(gomock.Any(), bookingID, s.currentUser).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "already confirmed",
				commandsError:  errs.ErrBookingNotRetryable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already has an artifact",
			},
			{
				name:           "regeneration failed again",
				commandsError:  errs.ErrArtifactGeneration,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "can be retried",
			},
			{
				name:           "unknown booking",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "not the owner",
				commandsError:  errs.ErrAccessDenied,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Access denied",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RetryArtifact(gomock.Any(), bookingID, s.currentUser).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetArtifact() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/qr"

	s.Run("success: returns 200 OK with the PNG bytes", func() {
		png := []byte{0x89, 'P', 'N', 'G'}
		s.mockArtifacts.EXPECT().Fetch(gomock.Any(), bookingID, "valid-token").
			Return(png, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?token=valid-token", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("image/png", rec.Header().Get("Content-Type"))
		s.Equal(png, rec.Body.Bytes())
	})

	s.Run("error: 401 Unauthorized when the token is absent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 Unauthorized for an expired or unparseable token", func() {
		s.mockArtifacts.EXPECT().Fetch(gomock.Any(), bookingID, "stale-token").
			Return(nil, usecase.ErrArtifactTokenInvalid).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?token=stale-token", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 403 Forbidden when the token names another booking", func() {
		s.mockArtifacts.EXPECT().Fetch(gomock.Any(), bookingID, "stolen-token").
			Return(nil, usecase.ErrArtifactTokenMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?token=stolen-token", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "does not grant access")
	})

	s.Run("error: 404 Not Found when the booking or file is gone", func() {
		for _, fetchErr := range []error{errs.ErrBookingNotFound, errs.ErrArtifactNotFound} {
			s.mockArtifacts.EXPECT().Fetch(gomock.Any(), bookingID, "valid-token").
				Return(nil, fetchErr).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?token=valid-token", nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Ticket not found")
		}
	})
}

func (s *BookingHandlerTestSuite) TestValidateScan() {
	payload := "BOOKING:" + uuid.NewString()
	url := "/bookings/validate/" + payload

	s.Run("success: returns 200 OK with a valid verdict and summary", func() {
		summary := builder.NewBookingBuilder().BuildScanSummary()
		s.mockValidation.EXPECT().ValidateScan(gomock.Any(), payload).
			Return(summary, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ScanResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Empty(response.Reason)
		s.Require().NotNil(response.Summary)
		s.Equal(summary.EventTitle, response.Summary.EventTitle)
		s.Equal(summary.Quantity, response.Summary.Quantity)
	})

	s.Run("rejected: 404 with an invalid verdict for an unknown ticket", func() {
		s.mockValidation.EXPECT().ValidateScan(gomock.Any(), payload).
			Return(nil, errs.ErrTicketUnknown).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusNotFound, rec.Code)
		var response resdto.ScanResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.False(response.Valid)
		s.Contains(response.Reason, "unknown or malformed")
		s.Nil(response.Summary)
	})

	s.Run("rejected: 200 with an invalid verdict for a consumed ticket", func() {
		s.mockValidation.EXPECT().ValidateScan(gomock.Any(), payload).
			Return(nil, errs.ErrTicketConsumed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		s.Equal(http.StatusOK, rec.Code)
		var response resdto.ScanResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.False(response.Valid)
		s.Contains(response.Reason, "already consumed")
	})

	s.Run("error: 500 Internal Server Error when the decision cannot be made", func() {
		s.mockValidation.EXPECT().ValidateScan(gomock.Any(), payload).
			Return(nil, errors.New("database down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
