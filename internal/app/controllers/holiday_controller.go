package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/app/services"
	"github.com/preskool/school/internal/middleware"
)

// HolidayController handles holiday calendar operations
type HolidayController struct {
	holidayService *services.HolidayService
}

// NewHolidayController creates a new HolidayController
func NewHolidayController(holidayService *services.HolidayService) *HolidayController {
	return &HolidayController{
		holidayService: holidayService,
	}
}

// ListHolidays builds the holiday calendar for one year
// @Summary Holiday calendar
// @Description Lists the active holidays of a year grouped by month, with type counts and the next upcoming holidays. An unparsable year falls back to the current one.
// @Tags holidays
// @Produce json
// @Security BearerAuth
// @Param year query int false "Calendar year"
// @Success 200 {object} dto.APIResponse{data=dto.HolidayListResponse} "Calendar retrieved"
// @Router /holidays [get]
func (c *HolidayController) ListHolidays(ctx *gin.Context) {
	calendar, err := c.holidayService.ListCalendar(ctx, ctx.Query("year"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(calendar))
}

// GetHoliday retrieves one holiday
// @Summary Get holiday by ID
// @Tags holidays
// @Produce json
// @Security BearerAuth
// @Param id path int true "Holiday ID"
// @Success 200 {object} dto.APIResponse{data=dto.HolidayResponse} "Holiday retrieved"
// @Failure 404 {object} dto.ErrorResponse "Holiday not found"
// @Router /holidays/{id} [get]
func (c *HolidayController) GetHoliday(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	holiday, err := c.holidayService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(holiday))
}

// CreateHoliday adds a holiday
// @Summary Create a holiday
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateHolidayRequest true "Holiday information"
// @Success 201 {object} dto.APIResponse{data=dto.HolidayResponse} "Holiday created"
// @Failure 409 {object} dto.ErrorResponse "Holiday with this name and date already exists"
// @Router /holidays [post]
func (c *HolidayController) CreateHoliday(ctx *gin.Context) {
	var req dto.CreateHolidayRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	holiday, err := c.holidayService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(holiday))
}

// UpdateHoliday edits a holiday
// @Summary Update a holiday
// @Tags holidays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Holiday ID"
// @Param request body dto.UpdateHolidayRequest true "Holiday information"
// @Success 200 {object} dto.APIResponse{data=dto.HolidayResponse} "Holiday updated"
// @Failure 404 {object} dto.ErrorResponse "Holiday not found"
// @Router /holidays/{id} [put]
func (c *HolidayController) UpdateHoliday(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateHolidayRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	holiday, err := c.holidayService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(holiday))
}

// DeleteHoliday removes a holiday
// @Summary Delete a holiday
// @Tags holidays
// @Produce json
// @Security BearerAuth
// @Param id path int true "Holiday ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Holiday deleted"
// @Failure 404 {object} dto.ErrorResponse "Holiday not found"
// @Router /holidays/{id} [delete]
func (c *HolidayController) DeleteHoliday(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.holidayService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Holiday deleted"}))
}
