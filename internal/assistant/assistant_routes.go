package assistant

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, authMiddleware gin.HandlerFunc) {
	group := r.Group("/assistant")
	group.Use(authMiddleware, middleware.ExtractUserID())
	{
		group.POST("/chat",
			middleware.RBACAuthorize(rbacService, "assistant", "use"),
			middleware.RateLimitByUser(0.5, 5),
			handler.Chat,
		)
	}
}
