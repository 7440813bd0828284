package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"access_gate/internal/auth"
	"access_gate/internal/authz"
	"access_gate/internal/store"
)

// checkAccess is the per-endpoint authorization checkpoint. The request
// gate only guarantees identity resolution; every protected handler calls
// this with its business element and the computed ownership before doing
// any work. On deny it writes the 403 and returns ok=false.
func checkAccess(c *gin.Context, engine *authz.Engine, element string, isOwner bool) (*store.Identity, bool) {
	ident, ok := auth.IdentityFrom(c)
	if !ok {
		// Gate should have run; treat a missing identity as unauthenticated.
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}

	action, ok := authz.ActionFromMethod(c.Request.Method)
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, false
	}

	allowed, err := engine.Authorize(c.Request.Context(), ident.Role, element, action, isOwner)
	if err != nil || !allowed {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, false
	}
	return ident, true
}

// checkOwned is checkAccess for endpoints whose ownership depends on the
// loaded record: is_owner is the comparison of the record's owner id with
// the caller's id.
func checkOwned(c *gin.Context, engine *authz.Engine, element string, ownerID int64) (*store.Identity, bool) {
	ident, ok := auth.IdentityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}

	action, ok := authz.ActionFromMethod(c.Request.Method)
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, false
	}

	allowed, err := engine.Authorize(c.Request.Context(), ident.Role, element, action, ident.ID == ownerID)
	if err != nil || !allowed {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, false
	}
	return ident, true
}

// listScope resolves list visibility for the caller on an element. Denied
// callers get the 403 written here.
func listScope(c *gin.Context, engine *authz.Engine, element string) (*store.Identity, authz.Scope, bool) {
	ident, ok := auth.IdentityFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, authz.ScopeNone, false
	}

	scope, err := engine.Scope(c.Request.Context(), ident.Role, element, authz.ActionRead)
	if err != nil || scope == authz.ScopeNone {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, authz.ScopeNone, false
	}
	return ident, scope, true
}
