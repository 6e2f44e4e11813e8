package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/varunm/batchswap/internal/app/controllers"
	"github.com/varunm/batchswap/internal/middleware"
	"github.com/varunm/batchswap/internal/pkg/metrics"
	"github.com/varunm/batchswap/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	swapController *controllers.SwapController,
	chatController *controllers.ChatController,
	wsHandler *websocket.Handler,
	sessionMiddleware *middleware.SessionMiddleware,
	m *metrics.Metrics,
) {
	// Operational endpoints outside the API version group
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/callback", authController.Callback)
		auth.GET("/check", authController.Check)
		auth.POST("/logout", authController.Logout)

		// Register needs a session but not yet a profile
		auth.POST("/register", sessionMiddleware.RequireSession(), authController.Register)
		auth.GET("/me", sessionMiddleware.RequireStudent(), authController.Me)
	}

	// --- Routes requiring a registered profile ---
	authenticated := v1.Group("")
	authenticated.Use(sessionMiddleware.RequireStudent())
	{
		students := authenticated.Group("/students")
		{
			students.GET("", studentController.List)
			students.GET("/eligible", studentController.ListEligible)
			students.GET("/me", studentController.Me)
			students.PUT("/me", studentController.UpdateMe)
			students.GET("/:id", studentController.GetByID)
		}

		swapRequests := authenticated.Group("/swap-requests")
		{
			swapRequests.POST("", swapController.Create)
			swapRequests.GET("/sent", swapController.ListSent)
			swapRequests.GET("/received", swapController.ListReceived)
			swapRequests.GET("/:id", swapController.Get)
			swapRequests.POST("/:id/accept", swapController.Accept)
			swapRequests.POST("/:id/reject", swapController.Reject)
			swapRequests.DELETE("/:id", swapController.Cancel)
		}

		chat := authenticated.Group("/chat")
		{
			chat.GET("/messages/:swapRequestId", chatController.History)
			chat.POST("/messages/:swapRequestId", chatController.PostMessage)
		}
	}

	// The WebSocket endpoint authenticates via its token query parameter
	// instead of the session cookie
	v1.GET("/chat/ws/:swapRequestId", wsHandler.HandleConnection)
}
