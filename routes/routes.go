package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Bhupesh2sharma/PRoject-Rapidine/configs"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/controllers"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/middlewares"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/repository"
	"github.com/Bhupesh2sharma/PRoject-Rapidine/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.RequestID())
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	sessionRepo := repository.NewSessionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	sessionSvc := services.NewSessionService(sessionRepo)
	orderSvc := services.NewOrderService(orderRepo, sessionRepo, menuRepo, staffRepo)
	menuSvc := services.NewMenuService(menuRepo)
	staffSvc := services.NewStaffService(staffRepo, attendanceRepo)
	authSvc := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.JWTRefreshSecret, cfg.JWTRefreshTTL)

	// Controllers
	sessionCtrl := controllers.NewSessionController(sessionSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	staffCtrl := controllers.NewStaffController(staffSvc)
	waiterCtrl := controllers.NewWaiterController(staffSvc)
	authCtrl := controllers.NewAuthController(authSvc)

	// Public: QR landing flow
	cs := r.Group("/customer-session")
	{
		cs.GET("/check/:tableNumber", sessionCtrl.Check)
		cs.POST("", sessionCtrl.Create)
	}
	r.GET("/menu", menuCtrl.List)
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders", orderCtrl.List)

	// Admin auth (public, rate limited)
	r.POST("/admin/login", middlewares.AuthLimiter(), authCtrl.Login)
	r.POST("/admin/refresh-token", authCtrl.Refresh)

	// Admin dashboard
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "manager"))
	{
		admin.POST("/register", middlewares.SensitiveOpLimiter(), authCtrl.Register)
		admin.GET("/dashboard-stats", orderCtrl.DashboardStats)

		admin.GET("/orders", orderCtrl.List)
		admin.PUT("/orders/:id", orderCtrl.UpdateStatus)

		admin.POST("/menu", menuCtrl.Create)
		admin.PUT("/menu/:id", menuCtrl.Update)
		admin.DELETE("/menu/:id", menuCtrl.Delete)

		admin.GET("/staff", staffCtrl.List)
		admin.POST("/staff", staffCtrl.Create)
		admin.PUT("/staff/:id", staffCtrl.Update)
		admin.DELETE("/staff/:id", staffCtrl.Delete)

		admin.POST("/staff/attendance/check-in/:staffId", staffCtrl.CheckIn)
		admin.PUT("/staff/attendance/check-out/:staffId", staffCtrl.CheckOut)
		admin.GET("/staff/attendance", staffCtrl.ListAttendance)

		admin.PUT("/customer-session/close/:tableNumber", sessionCtrl.Close)

		admin.GET("/waiters", waiterCtrl.List)
		admin.GET("/waiters/active", waiterCtrl.ListActive)
		admin.POST("/waiters", waiterCtrl.Create)
		admin.PUT("/waiters/:id", waiterCtrl.Update)
		admin.PUT("/waiters/:id/status", waiterCtrl.UpdateStatus)
		admin.DELETE("/waiters/:id", waiterCtrl.Delete)
	}
}
