// Package identity resolves the authenticated caller from bearer tokens
// issued by the external identity provider.
package identity

import "github.com/gin-gonic/gin"

// contextKey is the gin context key the middleware stores the identity under.
const contextKey = "identity"

// Identity is the authenticated caller as reported by the identity provider.
// The user id is an opaque string; this service never manages credentials.
type Identity struct {
	UserID string
	Email  string
}

// FromContext returns the identity stored by the auth middleware.
func FromContext(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(contextKey)
	if !exists {
		return Identity{}, false
	}
	ident, ok := value.(Identity)
	return ident, ok
}
