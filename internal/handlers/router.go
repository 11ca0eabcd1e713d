package handlers

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the full HTTP surface. Participant pages sit behind the
// session middleware, the admin area behind the admin-claim middleware.
func SetupRouter(h *Handlers, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	router.GET("/", h.Home)
	router.GET("/faq", h.FAQ)
	router.GET("/sponsors", h.Sponsors)

	router.GET("/register", h.RegisterPage)
	router.POST("/register", h.Register)
	router.GET("/login", h.LoginPage)
	router.POST("/login", h.Login)
	router.GET("/logout", h.Logout)

	router.GET("/vapid-public-key", h.GetVAPIDPublicKey)

	authed := router.Group("")
	authed.Use(h.AuthMiddleware())
	{
		authed.GET("/dashboard", h.Dashboard)
		authed.GET("/submit", h.SubmissionPage)
		authed.POST("/submit", h.SubmitProject)
		authed.GET("/feedback", h.FeedbackPage)
		authed.POST("/feedback", h.AddFeedback)
		authed.GET("/ws", h.HandleWebSocket)
		authed.POST("/push/subscribe", h.SubscribePush)
		authed.DELETE("/push/subscribe", h.UnsubscribePush)
	}

	router.GET("/admin/login", h.AdminLoginPage)
	router.POST("/admin/login", h.AdminLogin)
	router.GET("/admin/logout", h.AdminLogout)

	admin := router.Group("/admin")
	admin.Use(h.AdminMiddleware())
	{
		admin.GET("/dashboard", h.AdminDashboard)
		admin.POST("/add_update", h.AddLiveUpdate)
		admin.POST("/add_notification", h.AddNotification)
		admin.GET("/delete_update/:id", h.DeleteLiveUpdate)
		admin.GET("/delete_notification/:id", h.DeleteNotification)
		admin.GET("/teams", h.AdminTeams)
	}

	return router
}
