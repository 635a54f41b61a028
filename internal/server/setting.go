package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListSettings(c *gin.Context) {
	resp, err := s.settings.All(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SetSetting(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if !s.bindJSON(c, &req) {
		return
	}

	resp, err := s.settings.Set(c.Request.Context(), strings.TrimSpace(c.Param("key")), strings.TrimSpace(req.Value))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
