package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/mergington/internal/pkg/apperrors"
)

// BindParticipant binds and validates the participant request from the query
// string or a JSON body. Validation failures are returned as apperrors.ErrValidationFailed.
func BindParticipant(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBind(obj); err != nil {
		return translateBindingError(err)
	}
	return nil
}

func translateBindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		return apperrors.NewValidationError(field, formatValidationError(field, fe))
	}
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid request format: "+err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return field + " is required"
	default:
		return field + " validation failed: " + e.Tag()
	}
}
