package routes

import (
	"net/http"
	"time"

	"chaletbook/handlers"
	"chaletbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the booking frontend to call the API from another origin.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

// RegisterChaletRoutes registers the public catalog endpoints.
func RegisterChaletRoutes(r *gin.Engine, ch *handlers.ChaletHandler, sh *handlers.SearchHandler) {
	api := r.Group("/api/chalets")
	{
		api.GET("", ch.ListChalets)
		api.GET("/search", sh.SearchChalets)
		api.GET("/:id", ch.GetChalet)
		api.GET("/:id/quote", ch.QuoteStay)
	}
}

// RegisterSearchSessionRoutes registers the search-form session memory.
func RegisterSearchSessionRoutes(r *gin.Engine, sh *handlers.SearchHandler) {
	api := r.Group("/api/search/session")
	{
		api.GET("/:sessionID", sh.LastSearch)
		api.DELETE("/:sessionID", sh.ClearSearch)
	}
}

// RegisterOwnerRoutes registers the owner dashboard endpoints.
func RegisterOwnerRoutes(r *gin.Engine, oh *handlers.OwnerHandler) {
	api := r.Group("/api/owners")
	{
		api.POST("/register", oh.Register)
		api.POST("/login", oh.Login)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.OwnerAuthMiddleware())
		protected.GET("/chalets", oh.MyChalets)
		protected.GET("/chalets/:id/bookings", oh.ChaletBookings)
	}
}

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, ch *handlers.ChaletHandler, sh *handlers.SearchHandler, oh *handlers.OwnerHandler) {
	r.GET("/health", handlers.Health)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	RegisterBookingRoutes(r, bh)
	RegisterChaletRoutes(r, ch, sh)
	RegisterSearchSessionRoutes(r, sh)
	RegisterOwnerRoutes(r, oh)
}
