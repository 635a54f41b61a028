package server

import (
	"net/http"
	"strings"

	invoicedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/invoice/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

// lineRequest carries the measurements as typed on the billing screen.
// Blank chargeable sizes bill at the actual size.
type lineRequest struct {
	ProductID        snowflake.ID `json:"product_id" validate:"required"`
	ActualHeight     string       `json:"actual_height"`
	ActualWidth      string       `json:"actual_width"`
	ChargeableHeight string       `json:"chargeable_height"`
	ChargeableWidth  string       `json:"chargeable_width"`
	Quantity         string       `json:"quantity"`
}

func (r lineRequest) toQuote() (invoicedomain.QuoteRequest, error) {
	actualHeight, err := invoicedomain.ParseDimension("actual_height", r.ActualHeight)
	if err != nil {
		return invoicedomain.QuoteRequest{}, err
	}
	actualWidth, err := invoicedomain.ParseDimension("actual_width", r.ActualWidth)
	if err != nil {
		return invoicedomain.QuoteRequest{}, err
	}
	dims := invoicedomain.SameSize(actualHeight, actualWidth)
	if strings.TrimSpace(r.ChargeableHeight) != "" {
		if dims.ChargeableHeight, err = invoicedomain.ParseDimension("chargeable_height", r.ChargeableHeight); err != nil {
			return invoicedomain.QuoteRequest{}, err
		}
	}
	if strings.TrimSpace(r.ChargeableWidth) != "" {
		if dims.ChargeableWidth, err = invoicedomain.ParseDimension("chargeable_width", r.ChargeableWidth); err != nil {
			return invoicedomain.QuoteRequest{}, err
		}
	}
	quantity, err := invoicedomain.ParseQuantity(r.Quantity)
	if err != nil {
		return invoicedomain.QuoteRequest{}, err
	}
	return invoicedomain.QuoteRequest{
		ProductID:  r.ProductID,
		Dimensions: dims,
		Quantity:   quantity,
	}, nil
}

// QuoteLine prices one line without touching any draft.
func (s *Server) QuoteLine(c *gin.Context) {
	var req lineRequest
	if !s.bindJSON(c, &req) {
		return
	}
	quote, err := req.toQuote()
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.invoices.BuildLine(c.Request.Context(), quote)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// NextInvoiceNumber previews the number for ?date=DD/MM/YYYY, today when absent.
func (s *Server) NextInvoiceNumber(c *gin.Context) {
	date, err := s.dateOrToday("date", c.Query("date"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	next, err := s.invoices.NextInvoiceNumber(c.Request.Context(), date)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"invoice_number": next}})
}

func (s *Server) ListInvoices(c *gin.Context) {
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

	resp, err := s.invoices.List(c.Request.Context(), invoicedomain.ListInvoiceRequest{
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

func (s *Server) GetInvoice(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	c.Set("invoice_number", number)

	resp, err := s.invoices.GetByNumber(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetInvoicePDF(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))
	c.Set("invoice_number", number)

	doc, err := s.documents.InvoicePDF(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sendDocument(c, doc)
}
