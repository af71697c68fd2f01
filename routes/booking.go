package routes

import (
	"chaletbook/handlers"
	"chaletbook/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking flow. The
// flow requires no authentication; a bearer token is honored when present.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	api := r.Group("/api")
	api.Use(middleware.OptionalAuthMiddleware())
	{
		// Stateless contract endpoints.
		api.GET("/availability", bh.CheckAvailability)
		api.POST("/bookings", bh.CreateBooking)

		// Stateful draft flow.
		draft := api.Group("/booking/draft")
		draft.POST("", bh.StartDraft)                            // open a draft (step=cta)
		draft.GET("/:draftID", bh.GetDraft)                      // current state
		draft.POST("/:draftID/begin", bh.BeginDates)             // cta -> dates
		draft.POST("/:draftID/dates", bh.SetDates)               // record date selection
		draft.POST("/:draftID/check", bh.CheckDraftAvailability) // availability check
		draft.POST("/:draftID/submit", bh.SubmitDraft)           // phone -> success
		draft.POST("/:draftID/edit-dates", bh.EditDates)         // phone -> dates
		draft.POST("/:draftID/reset", bh.ResetDraft)             // success -> cta
	}
}
