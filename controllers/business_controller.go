package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bekfastjam/LocalBake/pkg/resp"
	"github.com/Bekfastjam/LocalBake/services"
)

type BusinessController struct {
	Service *services.BusinessService
}

func NewBusinessController(s *services.BusinessService) *BusinessController {
	return &BusinessController{Service: s}
}

// GET /api/businesses?category=&isOpen=&hasVegan=&query=
func (ctl *BusinessController) List(c *gin.Context) {
	filter := services.BusinessFilter{
		Category: c.Query("category"),
		Query:    c.Query("query"),
		HasVegan: c.Query("hasVegan") == "true",
	}
	switch c.Query("isOpen") {
	case "true":
		v := true
		filter.IsOpen = &v
	case "false":
		v := false
		filter.IsOpen = &v
	}

	businesses, err := ctl.Service.List(filter)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, businesses)
}

// GET /api/businesses/:id
func (ctl *BusinessController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	b, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "business not found")
		return
	}
	resp.OK(c, b)
}

// GET /api/businesses/:id/menu
func (ctl *BusinessController) Menu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	items, err := ctl.Service.MenuByBusiness(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/businesses/:id/reviews
func (ctl *BusinessController) Reviews(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	reviews, err := ctl.Service.ReviewsByBusiness(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}
