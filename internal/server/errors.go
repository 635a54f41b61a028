package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var ErrNotFound = apperror.NotFound("route_not_found")

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

// fromValidator converts go-playground field errors into the response shape.
func fromValidator(errs validator.ValidationErrors) error {
	out := make([]ValidationError, 0, len(errs))
	for _, fe := range errs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Code:    "invalid_" + fe.Field(),
			Message: fe.Field() + " failed " + fe.Tag(),
		})
	}
	return &ValidationErrors{Errors: out}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr != nil {
		return mapAppError(appErr)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}

func mapAppError(err *apperror.Error) (int, errorPayload) {
	switch err.Kind {
	case apperror.KindValidation:
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   err.Field,
					Code:    err.Code,
					Message: humanize(err.Code),
				},
			},
		}
	case apperror.KindPrecondition:
		return http.StatusUnprocessableEntity, errorPayload{
			Type:    "precondition_failed",
			Message: humanize(err.Code),
		}
	case apperror.KindNotFound:
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: humanize(err.Code),
		}
	case apperror.KindPersistence:
		switch {
		case strings.HasSuffix(err.Code, "_duplicate"):
			return http.StatusConflict, errorPayload{
				Type:    "conflict",
				Message: "conflict",
			}
		case err.Transient:
			return http.StatusServiceUnavailable, errorPayload{
				Type:    "service_unavailable",
				Message: "service unavailable",
			}
		}
	}
	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

// classifyErrorForLog reports the error type and code for the request log.
func classifyErrorForLog(err error) (string, string) {
	if asValidationErrors(err) != nil {
		return "validation_error", "invalid_request"
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr != nil {
		return string(appErr.Kind), appErr.Code
	}
	return "internal_error", ""
}

func humanize(code string) string {
	if code == "" {
		return "invalid value"
	}
	return strings.ReplaceAll(code, "_", " ")
}
