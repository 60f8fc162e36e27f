package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/app/services"
	"github.com/preskool/school/internal/middleware"
)

// EventController handles campus event operations
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// ListEvents retrieves events ordered by date
// @Summary List events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param upcoming query bool false "Only events from today onward"
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse} "Events retrieved"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	upcoming, _ := strconv.ParseBool(ctx.Query("upcoming"))

	var events []dto.EventResponse
	var err error
	if upcoming {
		events, err = c.eventService.ListUpcoming(ctx)
	} else {
		events, err = c.eventService.List(ctx)
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(events))
}

// CreateEvent adds a campus event
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	event, err := c.eventService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(event))
}
