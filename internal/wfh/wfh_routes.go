package wfh

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
	wfh := r.Group("/wfh")
	wfh.Use(authMiddleware, middleware.ExtractUserID())
	{
		wfh.GET("/me", middleware.RBACAuthorize(rbacService, "wfh", "read"), handler.ListMine)
		wfh.GET("/routed", middleware.RBACAuthorize(rbacService, "wfh", "decide"), handler.ListRouted)
		wfh.POST("", middleware.RBACAuthorize(rbacService, "wfh", "create"), idempotency, handler.Submit)
		wfh.POST("/:id/decision", middleware.RBACAuthorize(rbacService, "wfh", "decide"), idempotency, handler.Decide)
	}
}
