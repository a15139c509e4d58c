package httpapi

import "github.com/gin-gonic/gin"

func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()

	v1 := r.Group("/v1")
	v1.POST("/auth/guest", h.GuestToken)

	secured := v1.Group("")
	secured.Use(JWTAuth())
	{
		secured.GET("/schedule", h.Schedule)

		secured.GET("/selection", h.Selection)
		secured.POST("/selection/toggle", h.ToggleSlot)
		secured.DELETE("/selection", h.ClearSelection)
		secured.GET("/selection/summary", h.Confirmation)

		secured.GET("/quote", h.Quote)
		secured.POST("/bookings", h.Commit)

		secured.GET("/reservations", h.OwnReservations)
		secured.DELETE("/reservations/:id", h.Cancel)

		secured.GET("/profile", h.GetProfile)
		secured.PUT("/profile", h.PutProfile)
	}
	return r
}
