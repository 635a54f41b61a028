package server

import (
	"net/http"
	"strconv"
	"strings"

	customerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	invoicedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/domain"
	paymentdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/dates"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

func (s *Server) OpenDraft(c *gin.Context) {
	view, err := s.drafts.Open(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": view})
}

func (s *Server) GetDraft(c *gin.Context) {
	view, err := s.drafts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

// setDraftCustomerRequest selects a customer by id, or by name when the
// customer may not exist yet.
type setDraftCustomerRequest struct {
	CustomerID snowflake.ID `json:"customer_id"`
	Name       string       `json:"name" validate:"required_without=CustomerID,max=255"`
	Place      string       `json:"place"`
	Phone      string       `json:"phone"`
}

func (s *Server) SetDraftCustomer(c *gin.Context) {
	var req setDraftCustomerRequest
	if !s.bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	if req.CustomerID != 0 {
		view, err := s.drafts.SetCustomer(ctx, id, req.CustomerID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": view})
		return
	}

	view, created, err := s.drafts.SetCustomerByName(ctx, id, customerdomain.CreateCustomerRequest{
		Name:  strings.TrimSpace(req.Name),
		Place: strings.TrimSpace(req.Place),
		Phone: strings.TrimSpace(req.Phone),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view, "customer_created": created})
}

func (s *Server) SetDraftDate(c *gin.Context) {
	var req struct {
		Date string `json:"date" validate:"required,dmy"`
	}
	if !s.bindJSON(c, &req) {
		return
	}
	date, err := dates.Parse(req.Date)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	view, err := s.drafts.SetDate(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) AddDraftLine(c *gin.Context) {
	var req lineRequest
	if !s.bindJSON(c, &req) {
		return
	}
	quote, err := req.toQuote()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	view, err := s.drafts.AddLine(c.Request.Context(), c.Param("id"), quote)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) RemoveDraftLine(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		AbortWithError(c, invoicedomain.ErrLineIndexOutOfRange)
		return
	}

	view, err := s.drafts.RemoveLine(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) SetDraftSurcharges(c *gin.Context) {
	var req invoicedomain.SurchargeInput
	if !s.bindJSON(c, &req) {
		return
	}
	surcharges, err := invoicedomain.ParseSurcharges(req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	view, err := s.drafts.SetSurcharges(c.Request.Context(), c.Param("id"), surcharges)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) SetDraftPayment(c *gin.Context) {
	var req struct {
		Mode      string `json:"mode"`
		Reference string `json:"reference" validate:"max=255"`
	}
	if !s.bindJSON(c, &req) {
		return
	}
	mode, err := paymentdomain.ParseMode(req.Mode)
	if err != nil {
		AbortWithError(c, invoicedomain.ErrInvalidPaymentMode)
		return
	}

	view, err := s.drafts.SetPayment(c.Request.Context(), c.Param("id"), mode, strings.TrimSpace(req.Reference))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) CommitDraft(c *gin.Context) {
	result, view, err := s.drafts.Commit(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Set("invoice_number", result.Invoice.InvoiceNumber)

	c.JSON(http.StatusCreated, gin.H{"data": result, "draft": view})
}

func (s *Server) DiscardDraft(c *gin.Context) {
	if err := s.drafts.Discard(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
