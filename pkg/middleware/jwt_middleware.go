package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitcore/pkg/utils"
)

const identityKey = "identity"

// JWTAuthMiddleware is the access gate: every protected route resolves the
// bearer token to a verified identity here, or the request stops with a 401.
func JWTAuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		identity, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

// IdentityFromContext returns the identity the gate resolved for this request.
func IdentityFromContext(c *gin.Context) (utils.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return utils.Identity{}, false
	}
	identity, ok := value.(utils.Identity)
	return identity, ok
}
