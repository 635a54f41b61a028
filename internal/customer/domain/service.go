package domain

import (
	"context"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/apperror"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
)

type ListCustomerRequest struct {
	PageToken string
	PageSize  int
	Query     string
}

type ListCustomerFilter struct {
	Query string
}

type ListCustomerResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Place   string `json:"place"`
	Phone   string `json:"phone"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type UpdateCustomerRequest struct {
	ID snowflake.ID `json:"-"`
	CreateCustomerRequest
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	GetByID(context.Context, snowflake.ID) (Customer, error)
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
	// FindOrCreateByName returns the customer with this name, creating it when
	// the billing screen names someone new. The bool reports a creation.
	FindOrCreateByName(context.Context, CreateCustomerRequest) (Customer, bool, error)
}

var (
	ErrInvalidName  = apperror.Validation("name", "invalid_name")
	ErrInvalidPhone = apperror.Validation("phone", "invalid_phone")
	ErrInvalidTaxID = apperror.Validation("tax_id", "invalid_tax_id")
	ErrInvalidEmail = apperror.Validation("email", "invalid_email")
	ErrInvalidID    = apperror.Validation("id", "invalid_id")
	ErrInvalidToken = apperror.Validation("page_token", "invalid_page_token")
	ErrNotFound     = apperror.NotFound("customer_not_found")
)
