package policy

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, authMiddleware gin.HandlerFunc) {
	group := r.Group("/policies")
	group.Use(authMiddleware, middleware.ExtractUserID())
	{
		group.GET("", middleware.RBACAuthorize(rbacService, "policy", "read"), handler.Search)
		group.POST("/faq/:id/vote", middleware.RBACAuthorize(rbacService, "policy", "vote"), handler.Vote)
	}
}
