package server

import (
	"net/http"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/document"
	ledgerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/ledger/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type recordLedgerRequest struct {
	Date         string          `json:"date" validate:"omitempty,dmy"`
	CustomerName string          `json:"customer_name" validate:"max=255"`
	GlassType    string          `json:"glass_type" validate:"required,max=255"`
	ThicknessMM  string          `json:"thickness_mm" validate:"max=16"`
	Size         string          `json:"size" validate:"max=64"`
	Quantity     int             `json:"quantity" validate:"gt=0"`
	AreaSqft     decimal.Decimal `json:"area_sqft" validate:"gte=0"`
	Notes        string          `json:"notes"`
}

func (s *Server) RecordLedgerEntry(c *gin.Context) {
	var req recordLedgerRequest
	if !s.bindJSON(c, &req) {
		return
	}
	date, err := s.dateOrToday("date", req.Date)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.ledger.Record(c.Request.Context(), ledgerdomain.RecordRequest{
		Date:         date,
		CustomerName: strings.TrimSpace(req.CustomerName),
		GlassType:    strings.TrimSpace(req.GlassType),
		ThicknessMM:  strings.TrimSpace(req.ThicknessMM),
		Size:         strings.TrimSpace(req.Size),
		Quantity:     req.Quantity,
		AreaSqft:     req.AreaSqft,
		Notes:        strings.TrimSpace(req.Notes),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

// ListLedger returns one day's register with ?date, or the report range.
func (s *Server) ListLedger(c *gin.Context) {
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		day, err := s.dateOrToday("date", raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		resp, err := s.ledger.ListDay(c.Request.Context(), day)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": resp})
		return
	}

	from, to, err := s.reportRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	resp, err := s.ledger.ListRange(c.Request.Context(), from, to)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) LedgerTotals(c *gin.Context) {
	from, to, err := s.reportRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.ledger.DailyTotals(c.Request.Context(), from, to)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// ExportLedger renders the range as ?format=pdf (default) or xlsx.
func (s *Server) ExportLedger(c *gin.Context) {
	from, to, err := s.reportRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var doc document.Document
	switch strings.ToLower(strings.TrimSpace(c.DefaultQuery("format", "pdf"))) {
	case "pdf":
		doc, err = s.documents.LedgerPDF(c.Request.Context(), from, to)
	case "xlsx":
		doc, err = s.documents.LedgerXLSX(c.Request.Context(), from, to)
	default:
		AbortWithError(c, newValidationError("format", "invalid_format", "format must be pdf or xlsx"))
		return
	}
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sendDocument(c, doc)
}
