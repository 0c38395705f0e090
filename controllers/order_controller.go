package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bekfastjam/LocalBake/pkg/resp"
	"github.com/Bekfastjam/LocalBake/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

type createOrderReq struct {
	Order services.CreateOrderIn `json:"order" binding:"required"`
	Items []services.OrderItemIn `json:"items" binding:"required"`
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.Create(&req.Order, req.Items)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/:id
func (ctl *OrderController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	order, err := ctl.Service.Get(uint(id))
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/orders?email=
func (ctl *OrderController) ListByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		resp.BadRequest(c, "email parameter is required")
		return
	}
	orders, err := ctl.Service.ByEmail(email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PATCH /api/orders/:id/status
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := ctl.Service.UpdateStatus(uint(id), body.Status)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.OK(c, order)
}

func writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBusinessNotFound):
		resp.NotFound(c, "business not found")
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, "order not found")
	default:
		resp.ServerError(c, err)
	}
}
