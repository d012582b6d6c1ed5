package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tsionbantegize16/woinucoffee-web-design/entity"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/resp"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{Service: service}
}

// POST /orders (public)
func (ctl *OrderController) Place(c *gin.Context) {
	var req struct {
		CustomerName  string `json:"customer_name"`
		CustomerPhone string `json:"customer_phone"`
		OrderType     string `json:"order_type"`
		TotalAmount   string `json:"total_amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	total := decimal.Zero
	if req.TotalAmount != "" {
		var err error
		if total, err = decimal.NewFromString(req.TotalAmount); err != nil {
			resp.BadRequest(c, "invalid total amount")
			return
		}
	}

	order := &entity.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		OrderType:     req.OrderType,
		TotalAmount:   total,
	}
	if err := ctl.Service.Place(order); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, order)
}

// GET /admin/orders
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "statuses": entity.OrderStatuses})
}

// PATCH /admin/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "status is required")
		return
	}

	if err := ctl.Service.UpdateStatus(paramID(c), req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "order status updated"})
}
