package server

import (
	"net/http"
	"strings"

	customerdomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/customer/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

type customerRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Place   string `json:"place" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=32"`
	TaxID   string `json:"tax_id" validate:"max=32"`
	Address string `json:"address"`
	Email   string `json:"email" validate:"omitempty,email"`
}

func (r customerRequest) toDomain() customerdomain.CreateCustomerRequest {
	return customerdomain.CreateCustomerRequest{
		Name:    strings.TrimSpace(r.Name),
		Place:   strings.TrimSpace(r.Place),
		Phone:   strings.TrimSpace(r.Phone),
		TaxID:   strings.TrimSpace(r.TaxID),
		Address: strings.TrimSpace(r.Address),
		Email:   strings.TrimSpace(r.Email),
	}
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if !s.bindJSON(c, &req) {
		return
	}

	resp, err := s.customers.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req customerRequest
	if !s.bindJSON(c, &req) {
		return
	}

	resp, err := s.customers.Update(c.Request.Context(), customerdomain.UpdateCustomerRequest{
		ID:                    id,
		CreateCustomerRequest: req.toDomain(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCustomers(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Query string `form:"q"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customers.List(c.Request.Context(), customerdomain.ListCustomerRequest{
		PageToken: query.PageToken,
		PageSize:  query.PageSize,
		Query:     strings.TrimSpace(query.Query),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := s.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCustomerBalance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	resp, err := s.payments.CustomerBalance(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
