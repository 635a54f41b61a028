package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	attendancedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/attendance/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateWorker(c *gin.Context) {
	var req attendancedomain.CreateWorkerRequest
	if !s.bindJSON(c, &req) {
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)

	resp, err := s.workers.CreateWorker(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListWorkers(c *gin.Context) {
	activeOnly, err := parseOptionalBool(c.Query("active"))
	if err != nil {
		AbortWithError(c, newValidationError("active", "invalid_active", "invalid active"))
		return
	}

	resp, err := s.workers.ListWorkers(c.Request.Context(), activeOnly == nil || *activeOnly)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type markAttendanceRequest struct {
	WorkerID  snowflake.ID `json:"worker_id" validate:"required"`
	Date      string       `json:"date" validate:"omitempty,dmy"`
	Morning   bool         `json:"morning"`
	Afternoon bool         `json:"afternoon"`
	Notes     string       `json:"notes"`
}

// MarkAttendance writes the worker's day, replacing any earlier mark.
func (s *Server) MarkAttendance(c *gin.Context) {
	var req markAttendanceRequest
	if !s.bindJSON(c, &req) {
		return
	}
	date, err := s.dateOrToday("date", req.Date)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.workers.Mark(c.Request.Context(), attendancedomain.MarkRequest{
		WorkerID:  req.WorkerID,
		Date:      date,
		Morning:   req.Morning,
		Afternoon: req.Afternoon,
		Notes:     strings.TrimSpace(req.Notes),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetAttendance(c *gin.Context) {
	date, err := s.dateOrToday("date", c.Query("date"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.workers.ForDate(c.Request.Context(), date)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// AttendanceSummary reports the month given by year and month, defaulting
// to the current one.
func (s *Server) AttendanceSummary(c *gin.Context) {
	now := s.clock.Now()
	year, month := now.Year(), now.Month()
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			AbortWithError(c, newValidationError("year", "invalid_year", "invalid year"))
			return
		}
		year = parsed
	}
	if raw := strings.TrimSpace(c.Query("month")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			AbortWithError(c, attendancedomain.ErrInvalidMonth)
			return
		}
		month = time.Month(parsed)
	}

	resp, err := s.workers.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
