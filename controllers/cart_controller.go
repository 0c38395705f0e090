package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bekfastjam/LocalBake/cart"
	"github.com/Bekfastjam/LocalBake/pkg/resp"
	"github.com/Bekfastjam/LocalBake/services"
)

type CartController struct {
	Svc    *services.CartService
	Orders *services.OrderService
}

func NewCartController(svc *services.CartService, orders *services.OrderService) *CartController {
	return &CartController{Svc: svc, Orders: orders}
}

func sessionID(c *gin.Context) (string, bool) {
	sid := c.GetHeader("X-Session-ID")
	if sid == "" {
		resp.BadRequest(c, "X-Session-ID header is required")
		return "", false
	}
	return sid, true
}

func cartJSON(state cart.State) gin.H {
	return gin.H{
		"items":      state.Items,
		"businessId": state.BusinessID,
		"total":      state.Total().StringFixed(2),
		"itemCount":  state.ItemCount(),
	}
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	resp.OK(c, cartJSON(h.Svc.Get(sid)))
}

// POST /api/cart/items
func (h *CartController) AddItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, cartJSON(h.Svc.Add(sid, &req)))
}

// PATCH /api/cart/items/:id
func (h *CartController) UpdateQuantity(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, cartJSON(h.Svc.UpdateQuantity(sid, uint(id), *body.Quantity)))
}

// DELETE /api/cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))
	resp.OK(c, cartJSON(h.Svc.Remove(sid, uint(id))))
}

// DELETE /api/cart
func (h *CartController) Clear(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	resp.OK(c, cartJSON(h.Svc.Clear(sid)))
}

// POST /api/cart/checkout
func (h *CartController) Checkout(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		return
	}
	var in services.CreateOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Checkout(sid, h.Orders, &in)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	resp.Created(c, order)
}
