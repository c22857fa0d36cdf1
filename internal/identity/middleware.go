package identity

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Middleware verifies the Authorization bearer token and stores the caller
// identity in the request context. Requests without a valid token are
// rejected with 401; no data access happens without a resolved identity.
func Middleware(secret []byte, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			unauthenticated(c)
			return
		}

		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			logger.Debugw("token verification failed", "error", err)
			unauthenticated(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthenticated(c)
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			logger.Debugw("token missing sub claim")
			unauthenticated(c)
			return
		}
		email, _ := claims["email"].(string)

		c.Set(contextKey, Identity{UserID: sub, Email: email})
		c.Next()
	}
}

func unauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "UNAUTHENTICATED",
			"message": "authentication required",
		},
	})
}
