package ledger

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
	balances := r.Group("/balances")
	balances.Use(authMiddleware, middleware.ExtractUserID())
	{
		balances.GET("/me", middleware.RBACAuthorize(rbacService, "balance", "read"), handler.GetMine)
	}
}
