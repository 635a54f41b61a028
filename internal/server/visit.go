package server

import (
	"net/http"
	"strings"

	visitdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/visit/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

type logVisitRequest struct {
	CustomerID  *snowflake.ID `json:"customer_id"`
	DisplayName string        `json:"display_name" validate:"max=255"`
	City        string        `json:"city" validate:"max=255"`
	Purpose     string        `json:"purpose" validate:"required"`
	Date        string        `json:"date" validate:"omitempty,dmy"`
}

func (s *Server) LogVisit(c *gin.Context) {
	var req logVisitRequest
	if !s.bindJSON(c, &req) {
		return
	}
	visitedAt := s.clock.Now()
	if strings.TrimSpace(req.Date) != "" {
		day, err := dates.Parse(req.Date)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		visitedAt = day
	}

	resp, err := s.visits.Log(c.Request.Context(), visitdomain.LogVisitRequest{
		CustomerID:  req.CustomerID,
		DisplayName: strings.TrimSpace(req.DisplayName),
		City:        strings.TrimSpace(req.City),
		Purpose:     strings.TrimSpace(req.Purpose),
		VisitedAt:   visitedAt,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListVisits(c *gin.Context) {
	from, to, err := optionalRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.visits.List(c.Request.Context(), visitdomain.ListVisitRequest{From: from, To: to})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
