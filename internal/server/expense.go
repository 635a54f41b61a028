package server

import (
	"net/http"
	"strings"

	expensedomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/expense/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createExpenseRequest struct {
	Date        string          `json:"date" validate:"omitempty,dmy"`
	Category    string          `json:"category" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Description string          `json:"description"`
	PaymentMode string          `json:"payment_mode"`
}

func (s *Server) CreateExpense(c *gin.Context) {
	var req createExpenseRequest
	if !s.bindJSON(c, &req) {
		return
	}
	date, err := s.dateOrToday("date", req.Date)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	category, err := expensedomain.ParseCategory(req.Category)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.expenses.Create(c.Request.Context(), expensedomain.CreateExpenseRequest{
		Date:        date,
		Category:    category,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		PaymentMode: strings.TrimSpace(req.PaymentMode),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListExpenses(c *gin.Context) {
	from, to, err := optionalRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	req := expensedomain.ListExpenseRequest{From: from, To: to}
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		category, err := expensedomain.ParseCategory(raw)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		req.Category = &category
	}

	resp, err := s.expenses.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ExpenseSummary(c *gin.Context) {
	from, to, err := s.reportRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.expenses.Summary(c.Request.Context(), from, to)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ExportExpenses(c *gin.Context) {
	from, to, err := s.reportRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.documents.ExpensesXLSX(c.Request.Context(), from, to)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sendDocument(c, doc)
}
