package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"access_gate/internal/store"
)

const identityKey = "identity"

// Middleware returns the request gate: every request on a non-exempt path
// must authenticate before any handler runs. Exempt paths (registration
// and login by default) pass through untouched. The gate resolves
// identity only; per-endpoint authorization is a second, explicit
// checkpoint in the handlers.
func Middleware(a *Authenticator, exempt []string) gin.HandlerFunc {
	exemptSet := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		exemptSet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := exemptSet[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		ident, err := a.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// IdentityFrom returns the authenticated identity attached by the gate.
func IdentityFrom(c *gin.Context) (*store.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	ident, ok := v.(*store.Identity)
	return ident, ok
}
