package directory

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMiddleware gin.HandlerFunc,
) {
	users := r.Group("/users")
	users.Use(authMiddleware, middleware.ExtractUserID())
	{
		users.GET("", middleware.RBACAuthorize(rbacService, "directory", "read"), handler.GetAll)
		users.GET("/managers", handler.GetManagers)
		users.GET("/team", middleware.RBACAuthorize(rbacService, "team", "read"), handler.GetTeam)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, "directory", "read"), handler.GetByID)
		users.POST("", middleware.RBACAuthorize(rbacService, "directory", "create"), handler.Create)
		users.POST("/repair-managers", middleware.RBACAuthorize(rbacService, "directory", "repair"), handler.RepairManagers)
	}
}
