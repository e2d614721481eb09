package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yigit/mergington/internal/app/models/dto"
	"github.com/yigit/mergington/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeActivityNotFound, "Activity not found"))
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeAlreadyRegistered, "Student already signed up"))
	case errors.Is(err, apperrors.ErrNotRegistered):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeNotRegistered, "Student is not registered for this activity"))
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeCapacityExceeded, "Activity is full"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		resp := dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error())
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && custom.Code != "" {
			resp = resp.WithField(custom.Code)
		}
		c.JSON(http.StatusUnprocessableEntity, resp)
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

// NoRoute answers unknown paths with a JSON 404
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeRouteNotFound, "Not Found"))
	}
}

// NoMethod answers known paths hit with an unsupported method
func NoMethod() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, dto.NewErrorResponse(dto.ErrorCodeMethodNotAllowed, "Method Not Allowed"))
	}
}
