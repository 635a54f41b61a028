package server

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes the body into req and runs the struct validator. It
// aborts the request and returns false on failure.
func (s *Server) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		AbortWithError(c, invalidRequestError())
		return false
	}
	if s.validate == nil {
		return true
	}
	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			AbortWithError(c, fromValidator(fieldErrs))
			return false
		}
		AbortWithError(c, invalidRequestError())
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(strings.TrimSpace(c.Param(name)))
	if err != nil || id == 0 {
		AbortWithError(c, newValidationError(name, "invalid_"+name, "invalid "+name))
		return 0, false
	}
	return id, true
}

func parseOptionalSnowflakeID(field, value string) (*snowflake.ID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := snowflake.ParseString(trimmed)
	if err != nil || parsed == 0 {
		return nil, newValidationError(field, "invalid_"+field, "invalid "+field)
	}
	return &parsed, nil
}

func parseOptionalBool(value string) (*bool, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// dateOrToday reads a DD/MM/YYYY value, falling back to today when blank.
func (s *Server) dateOrToday(field, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return dates.Today(s.clock), nil
	}
	return dates.ParseField(field, raw)
}

// reportRange reads the from/to query pair of a report. A missing from is
// the first of to's month; a missing to is today.
func (s *Server) reportRange(c *gin.Context) (time.Time, time.Time, error) {
	to, err := s.dateOrToday("to", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	from := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		if from, err = dates.ParseField("from", raw); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, newValidationError("from", "invalid_range", "from is after to")
	}
	return from, to, nil
}

// optionalRange reads from/to filters; either may be absent.
func optionalRange(c *gin.Context) (*time.Time, *time.Time, error) {
	from, err := dates.ParseOptional("from", c.Query("from"))
	if err != nil {
		return nil, nil, err
	}
	to, err := dates.ParseOptional("to", c.Query("to"))
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
