package api

import (
	"errors"
	"net/http"

	domevent "ticketgate/internal/domain/event"
	reqdto "ticketgate/internal/handler/dto/request"
	resdto "ticketgate/internal/handler/dto/response"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase/commands"
	"ticketgate/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventHandler struct {
	eventUseCase     commands.EventCommands
	eventQueries     queries.EventQueries
	dashboardQueries queries.DashboardQueries
}

func NewEventHandler(
	eventUseCase commands.EventCommands,
	eventQueries queries.EventQueries,
	dashboardQueries queries.DashboardQueries,
) *EventHandler {
	return &EventHandler{
		eventUseCase:     eventUseCase,
		eventQueries:     eventQueries,
		dashboardQueries: dashboardQueries,
	}
}

// @Summary List events
// @Description List the public event catalog, optionally filtered
// @Tags events
// @Produce json
// @Param category query string false "Filter by category"
// @Param venue query string false "Filter by venue"
// @Param date query string false "Filter by calendar day (YYYY-MM-DD)"
// @Success 200 {array} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	var q reqdto.EventFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	filter, err := q.ToFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date filter, expected YYYY-MM-DD",
		})
		return
	}

	views, err := h.eventQueries.ListEvents(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}

// @Summary Get event
// @Description Get a single event with seat availability
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	view, err := h.eventQueries.GetEvent(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Create event
// @Description Create a catalog event (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EventRequest true "Event request"
// @Success 201 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req reqdto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.eventUseCase.CreateEvent(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.writeEventError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEventView(view))
}

// @Summary Update event
// @Description Update a catalog event (admin only)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.EventRequest true "Event request"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	var req reqdto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.eventUseCase.UpdateEvent(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		h.writeEventError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventView(view))
}

// @Summary Delete event
// @Description Delete a catalog event without bookings (admin only)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	if err := h.eventUseCase.DeleteEvent(c.Request.Context(), id); err != nil {
		h.writeEventError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Admin dashboard
// @Description Every event with its bookings and holders (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DashboardEntry
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/dashboard [get]
func (h *EventHandler) Dashboard(c *gin.Context) {
	entries, err := h.dashboardQueries.GetDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardEntries(entries))
}

func (h *EventHandler) writeEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event not found",
		})
	case errors.Is(err, errs.ErrCapacityBelowBooked):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Capacity cannot drop below booked seats",
		})
	case errors.Is(err, errs.ErrEventHasBookings):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Event has bookings and cannot be deleted",
		})
	case errors.Is(err, domevent.ErrEmptyTitle),
		errors.Is(err, domevent.ErrEmptyVenue),
		errors.Is(err, domevent.ErrNonPositiveCapacity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
