package server

import (
	"net/http"
	"strings"

	paymentdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/payment/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createPaymentRequest struct {
	CustomerID snowflake.ID    `json:"customer_id" validate:"required"`
	InvoiceID  *snowflake.ID   `json:"invoice_id"`
	Date       string          `json:"date" validate:"omitempty,dmy"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
	Mode       string          `json:"mode" validate:"required"`
	Reference  string          `json:"reference" validate:"max=255"`
}

func (s *Server) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if !s.bindJSON(c, &req) {
		return
	}
	date, err := s.dateOrToday("date", req.Date)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	mode, err := paymentdomain.ParseMode(req.Mode)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.payments.Create(c.Request.Context(), paymentdomain.CreatePaymentRequest{
		CustomerID: req.CustomerID,
		InvoiceID:  req.InvoiceID,
		Date:       date,
		Amount:     req.Amount,
		Mode:       mode,
		Reference:  strings.TrimSpace(req.Reference),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListPayments(c *gin.Context) {
	customerID, err := parseOptionalSnowflakeID("customer_id", c.Query("customer_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	from, to, err := optionalRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.payments.List(c.Request.Context(), paymentdomain.ListPaymentRequest{
		CustomerID: customerID,
		From:       from,
		To:         to,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// PaymentSummary lists the customers who still owe money.
func (s *Server) PaymentSummary(c *gin.Context) {
	resp, err := s.payments.Summary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPaymentReceipt(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	doc, err := s.documents.ReceiptPDF(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sendDocument(c, doc)
}
