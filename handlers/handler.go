package handlers

import (
	"manuscript-review/helper"

	"github.com/gin-gonic/gin"
	"gopkg.in/go-playground/validator.v9"
)

// httpHelper is shared by every handler, mirroring the middleware's
// package-level instance.
var httpHelper = helper.NewHTTPHelper()

// validateRequest runs a bound request through the validator and, on
// failure, writes the translated field errors. Returns false once the
// response has been sent.
func validateRequest(c *gin.Context, req interface{}) bool {
	err := httpHelper.Validate.Struct(req)
	if err == nil {
		return true
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		httpHelper.SendValidationError(c, validationErrors)
		return false
	}

	httpHelper.SendBadRequest(c, err.Error(), httpHelper.EmptyJsonMap())
	return false
}
