package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mockview/handlers"
	"mockview/middleware"
	"mockview/models"
	"mockview/utils"
)

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, reservationHandler *handlers.ReservationHandler, approvalHandler *handlers.ApprovalHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterReservationRoutes(r, reservationHandler)
	RegisterApprovalRoutes(r, approvalHandler)
	RegisterHealthRoute(r)
}

// RegisterReservationRoutes registers the candidate booking flow.
func RegisterReservationRoutes(r *gin.Engine, h *handlers.ReservationHandler) {
	api := r.Group("/api/v1")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/slots/:slotId", h.GetSlot)

		candidate := api.Group("")
		candidate.Use(middleware.RequireRole(models.RoleCandidate))
		candidate.POST("/slots/:slotId/book", h.BookSlot)
		candidate.POST("/payments/verify", h.VerifyPayment)
	}
}

// RegisterApprovalRoutes registers the interviewer verification workflow.
func RegisterApprovalRoutes(r *gin.Engine, h *handlers.ApprovalHandler) {
	api := r.Group("/api/v1")
	{
		api.Use(middleware.JWTAuthMiddleware())

		interviewer := api.Group("/interviewers")
		interviewer.Use(middleware.RequireRole(models.RoleInterviewer))
		interviewer.POST("/verification-request", h.Submit)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.POST("/approval-requests/:requestId/approve", h.Approve)
		admin.POST("/approval-requests/:requestId/reject", h.Reject)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": "ok", "dependencies": status})
	})
}
