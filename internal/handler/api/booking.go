package api

import (
	"errors"
	"net/http"

	dombooking "ticketgate/internal/domain/booking"
	reqdto "ticketgate/internal/handler/dto/request"
	resdto "ticketgate/internal/handler/dto/response"
	"ticketgate/internal/handler/middleware"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase"
	"ticketgate/internal/usecase/commands"
	"ticketgate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	scanReasonUnknown  = "unknown or malformed ticket"
	scanReasonConsumed = "ticket already consumed"
)

type BookingHandler struct {
	bookingUseCase    commands.BookingCommands
	validationUseCase commands.ValidationCommands
	bookingQueries    queries.BookingQueries
	artifactAccess    usecase.ArtifactAccess
}

func NewBookingHandler(
	bookingUseCase commands.BookingCommands,
	validationUseCase commands.ValidationCommands,
	bookingQueries queries.BookingQueries,
	artifactAccess usecase.ArtifactAccess,
) *BookingHandler {
	return &BookingHandler{
		bookingUseCase:    bookingUseCase,
		validationUseCase: validationUseCase,
		bookingQueries:    bookingQueries,
		artifactAccess:    artifactAccess,
	}
}

// @Summary Create booking
// @Description Reserve seats for an event and generate the ticket artifact
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingUseCase.CreateBooking(c.Request.Context(), commands.CreateBookingRequest{
		EventID:  req.EventID,
		Quantity: req.Quantity,
	}, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		case errors.Is(err, errs.ErrInsufficientSeats):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Not enough seats available",
			})
		case errors.Is(err, dombooking.ErrNonPositiveQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must be positive",
			})
		case errors.Is(err, errs.ErrArtifactGeneration):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Ticket generation failed, the booking can be retried",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description List the authenticated user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get a booking by ID, owner only
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingQueries.GetBooking(c.Request.Context(), id, userID)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Retry artifact generation
// @Description Regenerate the QR artifact for a failed booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /bookings/{id}/artifact [post]
func (h *BookingHandler) RetryArtifact(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	view, err := h.bookingUseCase.RetryArtifact(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotRetryable):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Booking already has an artifact",
			})
		case errors.Is(err, errs.ErrArtifactGeneration):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Ticket generation failed, the booking can be retried",
			})
		default:
			h.writeBookingError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Retrieve ticket QR
// @Description Serve the QR image, authorized by a capability token
// @Tags bookings
// @Produce png
// @Param id path string true "Booking ID"
// @Param token query string true "Capability token"
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/qr [get]
func (h *BookingHandler) GetArtifact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Access token required",
		})
		return
	}

	data, err := h.artifactAccess.Fetch(c.Request.Context(), id, tokenString)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrArtifactTokenInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
		case errors.Is(err, usecase.ErrArtifactTokenMismatch):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Token does not grant access to this ticket",
			})
		case errors.Is(err, errs.ErrBookingNotFound), errors.Is(err, errs.ErrArtifactNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Ticket not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}

// @Summary Validate scan
// @Description Decide a gate scan payload; consumes the ticket on success
// @Tags bookings
// @Produce json
// @Param payload path string true "Scanned payload"
// @Success 200 {object} resdto.ScanResponse
// @Failure 404 {object} resdto.ScanResponse
// @Router /bookings/validate/{payload} [get]
func (h *BookingHandler) ValidateScan(c *gin.Context) {
	summary, err := h.validationUseCase.ValidateScan(c.Request.Context(), c.Param("payload"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTicketUnknown):
			c.JSON(http.StatusNotFound, resdto.ScanRejected(scanReasonUnknown))
		case errors.Is(err, errs.ErrTicketConsumed):
			c.JSON(http.StatusOK, resdto.ScanRejected(scanReasonConsumed))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromScanSummary(summary))
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, errs.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
