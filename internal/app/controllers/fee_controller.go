package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/app/services"
	"github.com/preskool/school/internal/middleware"
)

// FeeController handles fee operations
type FeeController struct {
	feeService *services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService *services.FeeService) *FeeController {
	return &FeeController{
		feeService: feeService,
	}
}

// ListFees retrieves the fees visible to the caller
// @Summary List fees
// @Description Admins see every fee; students only their own rows
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.FeeResponse} "Fees retrieved"
// @Router /fees [get]
func (c *FeeController) ListFees(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	role, _ := middleware.CurrentRole(ctx)

	fees, err := c.feeService.List(ctx, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fees))
}

// GetFee retrieves one fee
// @Summary Get fee by ID
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=dto.FeeResponse} "Fee retrieved"
// @Failure 403 {object} dto.ErrorResponse "Not the caller's fee"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{id} [get]
func (c *FeeController) GetFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, _ := middleware.CurrentUserID(ctx)
	role, _ := middleware.CurrentRole(ctx)

	fee, err := c.feeService.Get(ctx, id, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// CreateFee adds a fee
// @Summary Create a fee
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeRequest true "Fee information"
// @Success 201 {object} dto.APIResponse{data=dto.FeeResponse} "Fee created"
// @Failure 400 {object} dto.ErrorResponse "Invalid amount or student"
// @Router /fees [post]
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	fee, err := c.feeService.Create(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(fee))
}

// UpdateFee edits a fee
// @Summary Update a fee
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Param request body dto.UpdateFeeRequest true "Fee information"
// @Success 200 {object} dto.APIResponse{data=dto.FeeResponse} "Fee updated"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{id} [put]
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFeeRequest
	if !middleware.BindAndValidate(ctx, &req) {
		return
	}

	fee, err := c.feeService.Update(ctx, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(fee))
}

// DeleteFee removes a fee
// @Summary Delete a fee
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Fee deleted"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Router /fees/{id} [delete]
func (c *FeeController) DeleteFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.feeService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Fee deleted"}))
}
