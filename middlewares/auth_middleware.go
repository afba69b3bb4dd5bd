package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/marketplace-app/utils"
)

// Context keys set by the auth middlewares for downstream handlers.
const (
	CtxPrincipalID    = "principal_id"
	CtxPrincipalEmail = "principal_email"
)

// RequireVendor only lets requests with a valid vendor token through.
func RequireVendor() gin.HandlerFunc {
	return requirePrincipal(utils.PrincipalVendor)
}

// RequireCustomer only lets requests with a valid customer token through.
func RequireCustomer() gin.HandlerFunc {
	return requirePrincipal(utils.PrincipalCustomer)
}

func requirePrincipal(expectedType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, utils.NewUnauthorized("No token provided"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, utils.NewUnauthorized("Invalid or expired token"))
			c.Abort()
			return
		}

		if claims.Type != expectedType {
			utils.RespondError(c, utils.NewUnauthorized("Invalid token type"))
			c.Abort()
			return
		}

		c.Set(CtxPrincipalID, claims.ID)
		c.Set(CtxPrincipalEmail, claims.Email)
		c.Next()
	}
}
