package server

import (
	"net/http"
	"strings"

	inventorydomain "github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/inventory/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

type recordMovementRequest struct {
	ProductID snowflake.ID `json:"product_id" validate:"required"`
	Date      string       `json:"date" validate:"omitempty,dmy"`
	Direction string       `json:"direction" validate:"required,oneof=stock_in stock_out"`
	Quantity  int          `json:"quantity" validate:"gt=0"`
	Notes     string       `json:"notes"`
}

func (s *Server) RecordMovement(c *gin.Context) {
	var req recordMovementRequest
	if !s.bindJSON(c, &req) {
		return
	}
	date, err := s.dateOrToday("date", req.Date)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.inventory.Record(c.Request.Context(), inventorydomain.RecordRequest{
		ProductID: req.ProductID,
		Date:      date,
		Direction: inventorydomain.Direction(req.Direction),
		Quantity:  req.Quantity,
		Notes:     strings.TrimSpace(req.Notes),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListMovements(c *gin.Context) {
	productID, err := parseOptionalSnowflakeID("product_id", c.Query("product_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	from, to, err := optionalRange(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.inventory.List(c.Request.Context(), inventorydomain.ListRequest{
		ProductID: productID,
		From:      from,
		To:        to,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// GetStock returns one product's level when product_id is given, otherwise
// every product's.
func (s *Server) GetStock(c *gin.Context) {
	productID, err := parseOptionalSnowflakeID("product_id", c.Query("product_id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if productID != nil {
		level, err := s.inventory.StockLevel(c.Request.Context(), *productID)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": level})
		return
	}

	resp, err := s.inventory.Summary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
