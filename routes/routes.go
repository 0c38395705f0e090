package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bekfastjam/LocalBake/controllers"
	"github.com/Bekfastjam/LocalBake/repository"
	"github.com/Bekfastjam/LocalBake/services"
	"github.com/Bekfastjam/LocalBake/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	businessRepo := repository.NewBusinessRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	businessSvc := services.NewBusinessService(businessRepo, menuRepo, reviewRepo)
	orderSvc := services.NewOrderService(db, orderRepo, businessRepo)
	cartSvc := services.NewCartService()

	// Websocket status feed
	hub := ws.NewOrderHub(orderSvc)
	orderSvc.SetNotifier(hub)
	go hub.Run()

	// Controllers
	businessCtl := controllers.NewBusinessController(businessSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	cartCtl := controllers.NewCartController(cartSvc, orderSvc)

	api := r.Group("/api")
	{
		api.GET("/businesses", businessCtl.List)
		api.GET("/businesses/:id", businessCtl.Get)
		api.GET("/businesses/:id/menu", businessCtl.Menu)
		api.GET("/businesses/:id/reviews", businessCtl.Reviews)

		api.POST("/orders", orderCtl.Create)
		api.GET("/orders", orderCtl.ListByEmail)
		api.GET("/orders/:id", orderCtl.Get)
		api.PATCH("/orders/:id/status", orderCtl.UpdateStatus)

		api.GET("/cart", cartCtl.Get)
		api.POST("/cart/items", cartCtl.AddItem)
		api.PATCH("/cart/items/:id", cartCtl.UpdateQuantity)
		api.DELETE("/cart/items/:id", cartCtl.RemoveItem)
		api.DELETE("/cart", cartCtl.Clear)
		api.POST("/cart/checkout", cartCtl.Checkout)
	}

	r.GET("/ws/orders/:id", hub.HandleWebSocket)
}
