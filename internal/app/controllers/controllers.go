package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/preskool/school/internal/middleware"
	"github.com/preskool/school/internal/pkg/apperrors"
)

// parseIDParam parses the :id path parameter. On failure it answers the
// request with a 400 and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	idStr := ctx.Param(name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError(name+" must be a positive number"))
		return 0, false
	}
	return id, true
}
