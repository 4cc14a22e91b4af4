package routes

import (
	"preorder/cache"
	"preorder/configs"
	"preorder/controllers"
	"preorder/entity"
	"preorder/middlewares"
	"preorder/repository"
	"preorder/services"
	"preorder/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Deps คือของที่ main เตรียมไว้ให้ (DB, catalog, store ภายนอก)
type Deps struct {
	DB        *gorm.DB
	Config    *configs.Config
	Catalog   []entity.Meal
	CartStore cache.CartStore
	Hub       *ws.NotificationHub
	// ช่องทางแจ้งเตือนเพิ่มเติม เช่น email
	Channels []services.Channel
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware(d.Config.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	secret := d.Config.JWTSecret
	hub := d.Hub
	if hub == nil {
		hub = ws.NewNotificationHub()
	}

	// Repositories / Services
	orderRepo := repository.NewOrderRepository(d.DB)
	catalogSvc := services.NewCatalogService(repository.NewCatalogRepository(d.Catalog))
	orderSvc := services.NewOrderService(d.DB, orderRepo, catalogSvc)
	cartSvc := services.NewCartService(d.CartStore, catalogSvc, orderSvc, d.Config.CartTTL)
	channels := append([]services.Channel{hub}, d.Channels...)
	notifySvc := services.NewNotificationService(repository.NewNotificationRepository(d.DB), orderRepo, channels...)
	favSvc := services.NewFavoriteService(repository.NewFavoriteRepository(d.DB), catalogSvc)
	authSvc := services.NewAuthService(repository.NewUserRepository(d.DB), secret, d.Config.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	mealCtrl := controllers.NewMealController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminOrderController(orderSvc, notifySvc)
	notiCtrl := controllers.NewNotificationController(notifySvc)
	favCtrl := controllers.NewFavoriteController(favSvc)

	optional := middlewares.OptionalAuth(secret)
	authed := middlewares.AuthMiddleware(secret)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Catalog (public)
	m := r.Group("/meals")
	{
		m.GET("", mealCtrl.List)
		m.GET("/categories", mealCtrl.Categories)
		m.GET("/:id", mealCtrl.Detail)
	}

	// Cart (session header, login ไม่บังคับ)
	cart := r.Group("/cart", optional)
	{
		cart.GET("", cartCtrl.Get)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items", cartCtrl.UpdateQty)
		cart.DELETE("/items/:mealId", cartCtrl.RemoveItem)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	// Orders
	r.POST("/orders", optional, orderCtrl.Create)
	o := r.Group("/orders", authed)
	{
		o.GET("", orderCtrl.List)
		o.GET("/:id", orderCtrl.Detail)
		o.GET("/:id/receipt", orderCtrl.Receipt)
		o.POST("/:id/reorder", cartCtrl.Reorder)
	}

	// Admin
	admin := r.Group("/admin", middlewares.AuthMiddleware(secret, entity.RoleAdmin))
	{
		admin.GET("/orders", adminCtrl.List)
		admin.PATCH("/orders", adminCtrl.UpdateStatus)
		admin.POST("/orders/:id/ready", adminCtrl.NotifyReady)
		admin.GET("/stats", adminCtrl.Stats)
	}

	// Notifications
	r.POST("/notifications", middlewares.AuthMiddleware(secret, entity.RoleAdmin), notiCtrl.Create)
	n := r.Group("/notifications", optional)
	{
		n.GET("", notiCtrl.List)
		n.PATCH("/read-all", notiCtrl.MarkAllRead)
		n.PATCH("/:id/read", notiCtrl.MarkRead)
	}

	// Favorites
	f := r.Group("/favorites", optional)
	{
		f.GET("", favCtrl.List)
		f.POST("", favCtrl.Add)
		f.DELETE("", favCtrl.Remove)
	}

	// WebSocket
	r.GET("/ws/notifications", optional, hub.HandleWebSocket)
}
