package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izaj/izaj-golang/internal/handlers"
	"github.com/izaj/izaj-golang/internal/middleware"
)

// CORSMiddleware tells the browser the storefront frontend may talk to
// this API.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// CORS must be the very first thing the router uses.
	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes (Public) ---
		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)
		v1.POST("/auth/forgot-password", h.ForgotPassword)

		// --- Cart Pricing Routes (Public) ---
		v1.POST("/cart/price", h.PriceCart)
		v1.POST("/cart/estimate-shipping", h.EstimateShipping)

		// --- Geographic Lookup (Public) ---
		v1.GET("/psgc/provinces", h.GetProvinces)

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware())
		{
			auth.POST("/logout", h.Logout)
			auth.GET("/auth/me", h.Me)
			auth.POST("/account/request-deletion", h.RequestDeletion)
		}
	}

	return router
}
