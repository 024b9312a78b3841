package returntowork

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, authMiddleware gin.HandlerFunc) {
	group := r.Group("/return-to-work")
	group.Use(authMiddleware, middleware.ExtractUserID())
	{
		group.GET("", middleware.RBACAuthorize(rbacService, "return_to_work", "read"), handler.ListMine)
		group.GET("/pending", middleware.RBACAuthorize(rbacService, "return_to_work", "read"), handler.ListPending)
	}
}
