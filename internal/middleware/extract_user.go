package middleware

import (
	"net/http"

	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get("user_id")
		if !exists {
			response.Error(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated", nil)
			ctx.Abort()
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			response.Error(ctx, http.StatusUnauthorized, "INVALID_USER_ID", "invalid user_id format", nil)
			ctx.Abort()
			return
		}

		ctx.Set("user_id_validated", userIDStr)

		reqCtx := contextutil.WithUserID(ctx.Request.Context(), userIDStr)
		reqCtx = contextutil.WithRole(reqCtx, ctx.GetString("role"))
		md := contextutil.ExtractMetadata(reqCtx)
		reqLogger := contextutil.GetLogger(reqCtx, zap.L()).With(
			zap.String("user_id", md.UserID),
			zap.String("role", md.Role),
		)
		reqCtx = contextutil.WithLogger(reqCtx, reqLogger)
		ctx.Request = ctx.Request.WithContext(reqCtx)
		ctx.Next()
	}
}
