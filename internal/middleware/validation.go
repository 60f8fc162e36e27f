package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/preskool/school/internal/app/models/dto"
)

var validate = validator.New()

// ValidateStruct runs the struct validator outside of gin binding. Used where
// a request is assembled from multiple sources before validation.
func ValidateStruct(obj interface{}) error {
	return validate.Struct(obj)
}

// BindAndValidate binds the JSON body into obj and renders a field-level 400
// on failure. Returns false when the request was already answered.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
