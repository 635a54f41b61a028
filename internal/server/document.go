package server

import (
	"net/http"
	"strconv"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/document"
	"github.com/gin-gonic/gin"
)

// sendDocument streams doc as an attachment. With ?save=true the file is
// also written under the document directory and its path echoed back.
func (s *Server) sendDocument(c *gin.Context, doc document.Document) {
	if save, _ := strconv.ParseBool(c.Query("save")); save {
		path, err := s.documents.Save(c.Request.Context(), doc)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.Header("X-Document-Path", path)
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Name+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
