package leave

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMiddleware gin.HandlerFunc,
	idempotency gin.HandlerFunc,
) {
	leaves := r.Group("/leaves")
	leaves.Use(authMiddleware, middleware.ExtractUserID())
	{
		leaves.GET("/me", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.ListMine)
		leaves.GET("/routed", middleware.RBACAuthorize(rbacService, "leave", "decide"), handler.ListRouted)
		leaves.GET("/team-calendar", middleware.RBACAuthorize(rbacService, "team", "read"), handler.TeamCalendar)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetByID)
		leaves.POST("", middleware.RBACAuthorize(rbacService, "leave", "create"), idempotency, handler.Submit)
		leaves.POST("/:id/decision", middleware.RBACAuthorize(rbacService, "leave", "decide"), idempotency, handler.Decide)
	}
}
