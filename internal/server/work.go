package server

import (
	"net/http"
	"strings"

	workdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/work/domain"
	"github.com/gin-gonic/gin"
)

type createWorkRequest struct {
	Date      string `json:"date" validate:"omitempty,dmy"`
	GlassType string `json:"glass_type" validate:"required,max=255"`
	Size      string `json:"size" validate:"required,max=64"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
	Status    string `json:"status"`
}

func (s *Server) CreateWork(c *gin.Context) {
	var req createWorkRequest
	if !s.bindJSON(c, &req) {
		return
	}
	date, err := s.dateOrToday("date", req.Date)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	status := workdomain.StatusPending
	if strings.TrimSpace(req.Status) != "" {
		if status, err = workdomain.ParseStatus(req.Status); err != nil {
			AbortWithError(c, err)
			return
		}
	}

	resp, err := s.works.Create(c.Request.Context(), workdomain.CreateWorkRequest{
		Date:      date,
		GlassType: strings.TrimSpace(req.GlassType),
		Size:      strings.TrimSpace(req.Size),
		Quantity:  req.Quantity,
		Status:    status,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListWorks(c *gin.Context) {
	var status *workdomain.Status
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		parsed, err := workdomain.ParseStatus(raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		status = &parsed
	}

	resp, err := s.works.List(c.Request.Context(), status)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateWorkStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if !s.bindJSON(c, &req) {
		return
	}
	status, err := workdomain.ParseStatus(req.Status)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.works.UpdateWorkStatus(c.Request.Context(), id, status)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

