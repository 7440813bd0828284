package httpserver

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"access_gate/internal/auth"
	"access_gate/internal/authz"
	"access_gate/internal/http/handlers"
	"access_gate/internal/store"
	"access_gate/internal/token"
)

// NewRouter wires the request gate and the endpoint handlers. The gate
// authenticates everything except the exempt paths; each protected
// handler then runs its own authorization checkpoint against its
// business element.
func NewRouter(db *gorm.DB, codec *token.Codec, exemptPaths []string) *gin.Engine {
	r := gin.Default()

	st := store.Gorm{DB: db}
	authn := auth.NewAuthenticator(codec, st)
	engine := authz.NewEngine(st)
	mockData := handlers.NewMockStore()

	api := r.Group("/api/v1", auth.Middleware(authn, exemptPaths))
	{
		// Exempt (reachable with no credential)
		api.POST("/auth/register", handlers.RegisterHandler(db, codec))
		api.POST("/auth/login", handlers.LoginHandler(db, codec))
		// Logout is authenticated but otherwise a no-op: tokens cannot
		// be revoked before expiry.
		api.POST("/auth/logout", handlers.LogoutHandler())

		// Current user
		api.GET("/me", handlers.MeHandler(db))

		// Users (element "users")
		api.GET("/users", handlers.ListUsers(db, engine))
		api.GET("/users/:id", handlers.GetUser(db, engine))
		api.PUT("/users/:id", handlers.UpdateUser(db, engine))
		api.PATCH("/users/:id", handlers.UpdateUser(db, engine))
		api.DELETE("/users/:id", handlers.DeleteUser(db, engine))

		// Mock data (element "mock_data")
		api.GET("/mock-data", handlers.ListMockData(mockData, engine))
		api.POST("/mock-data", handlers.CreateMockData(mockData, engine))
		api.GET("/mock-data/:id", handlers.GetMockData(mockData, engine))
		api.PUT("/mock-data/:id", handlers.UpdateMockData(mockData, engine))
		api.DELETE("/mock-data/:id", handlers.DeleteMockData(mockData, engine))

		// Admin (element "access_rules")
		api.GET("/roles", handlers.ListRoles(db, engine))
		api.POST("/roles", handlers.CreateRole(db, engine))
		api.GET("/access-rules", handlers.ListAccessRules(db, engine))
		api.POST("/access-rules", handlers.CreateAccessRule(db, engine))
		api.PUT("/access-rules/:id", handlers.UpdateAccessRule(db, engine))
	}

	return r
}
