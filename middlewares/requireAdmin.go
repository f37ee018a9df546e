package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func RequireAdmin() gin.HandlerFunc {
	return requireRole("admin")
}

// RequireManager admits restaurant owners as well as admins.
func RequireManager() gin.HandlerFunc {
	return requireRole("admin", "owner")
}

func requireRole(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userClaims, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		claims, ok := userClaims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found in context"})
			return
		}

		role, _ := claims["role"].(string)
		for _, allowed := range roles {
			if role == allowed {
				ctx.Next()
				return
			}
		}

		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions"})
	}
}
