package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tsionbantegize16/woinucoffee-web-design/configs"
	"github.com/tsionbantegize16/woinucoffee-web-design/controllers"
	"github.com/tsionbantegize16/woinucoffee-web-design/middlewares"
	"github.com/tsionbantegize16/woinucoffee-web-design/pkg/storage"
	"github.com/tsionbantegize16/woinucoffee-web-design/repository"
	"github.com/tsionbantegize16/woinucoffee-web-design/services"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, store *storage.Store) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	adminRepo := repository.NewAdminRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	menuItemRepo := repository.NewMenuItemRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	testimonialRepo := repository.NewTestimonialRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Controllers
	authCtrl := controllers.NewAuthController(
		services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL))
	categoryCtrl := controllers.NewCategoryController(
		services.NewCategoryService(categoryRepo))
	menuItemCtrl := controllers.NewMenuItemController(
		services.NewMenuItemService(menuItemRepo), store)
	blogCtrl := controllers.NewBlogController(
		services.NewBlogService(blogRepo), store)
	testimonialCtrl := controllers.NewTestimonialController(
		services.NewTestimonialService(testimonialRepo), store)
	galleryCtrl := controllers.NewGalleryController(
		services.NewGalleryService(galleryRepo), store)
	messageCtrl := controllers.NewMessageController(
		services.NewMessageService(messageRepo))
	orderCtrl := controllers.NewOrderController(
		services.NewOrderService(orderRepo))
	promotionCtrl := controllers.NewPromotionController(
		services.NewPromotionService(promotionRepo))
	settingCtrl := controllers.NewSettingController(
		services.NewSettingService(settingRepo))
	dashboardCtrl := controllers.NewDashboardController(
		services.NewDashboardService(menuItemRepo, categoryRepo, messageRepo, orderRepo, testimonialRepo))

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/password", authCtrl.UpdatePassword)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Public site
	r.GET("/categories", categoryCtrl.PublicList)
	r.GET("/menu", menuItemCtrl.PublicList)
	r.GET("/blog", blogCtrl.PublicList)
	r.GET("/blog/:slug", blogCtrl.PublicBySlug)
	r.GET("/gallery", galleryCtrl.PublicList)
	r.POST("/gallery/:id/like", galleryCtrl.Like)
	r.POST("/gallery/:id/unlike", galleryCtrl.Unlike)
	r.GET("/testimonials", testimonialCtrl.PublicList)
	r.GET("/promotions", promotionCtrl.PublicList)
	r.GET("/settings", settingCtrl.Get)
	r.POST("/contact", messageCtrl.Submit)
	r.POST("/orders", orderCtrl.Place)

	// Admin dashboard (session required)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		admin.GET("/dashboard", dashboardCtrl.Stats)

		admin.GET("/categories", categoryCtrl.List)
		admin.POST("/categories", categoryCtrl.Create)
		admin.PATCH("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)

		admin.GET("/menu-items", menuItemCtrl.List)
		admin.POST("/menu-items", menuItemCtrl.Create)
		admin.PATCH("/menu-items/:id", menuItemCtrl.Update)
		admin.DELETE("/menu-items/:id", menuItemCtrl.Delete)

		admin.GET("/blog", blogCtrl.List)
		admin.POST("/blog", blogCtrl.Create)
		admin.PATCH("/blog/:id", blogCtrl.Update)
		admin.DELETE("/blog/:id", blogCtrl.Delete)

		admin.GET("/testimonials", testimonialCtrl.List)
		admin.POST("/testimonials", testimonialCtrl.Create)
		admin.PATCH("/testimonials/:id", testimonialCtrl.Update)
		admin.DELETE("/testimonials/:id", testimonialCtrl.Delete)

		admin.GET("/gallery", galleryCtrl.List)
		admin.POST("/gallery", galleryCtrl.Create)
		admin.PATCH("/gallery/:id", galleryCtrl.Update)
		admin.DELETE("/gallery/:id", galleryCtrl.Delete)

		admin.GET("/messages", messageCtrl.List)
		admin.PATCH("/messages/:id/read", messageCtrl.MarkRead)
		admin.DELETE("/messages/:id", messageCtrl.Delete)

		admin.GET("/orders", orderCtrl.List)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)

		admin.GET("/promotions", promotionCtrl.List)
		admin.POST("/promotions", promotionCtrl.Create)
		admin.PATCH("/promotions/:id", promotionCtrl.Update)
		admin.DELETE("/promotions/:id", promotionCtrl.Delete)

		admin.GET("/settings", settingCtrl.Get)
		admin.PUT("/settings", settingCtrl.Put)
	}
}
