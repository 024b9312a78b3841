package rbac

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(authMiddleware, middleware.ExtractUserID())
	{
		group.GET("/permissions/me", handler.MyPermissions)
		group.POST("/check", handler.Check)
	}
}
