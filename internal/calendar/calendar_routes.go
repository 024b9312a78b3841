package calendar

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, authMiddleware gin.HandlerFunc) {
	group := r.Group("/calendar/integrations")
	group.Use(authMiddleware, middleware.ExtractUserID(), middleware.RBACAuthorize(rbacService, "calendar", "manage"))
	{
		group.GET("", handler.List)
		group.POST("", handler.Connect)
		group.DELETE("/:id", handler.Disable)
	}
}
