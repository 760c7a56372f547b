package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"event-backend/controllers"
	"event-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the route tree.
func SetupRouter(
	ec *controllers.EventController,
	gc *controllers.GuestController,
	tc *controllers.TableController,
	rc *controllers.RSVPController,
	cc *controllers.ContactController,
	nc *controllers.NotificationController,
	cmc *controllers.CampaignController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		events := api.Group("/events")
		{
			events.GET("", ec.List)
			events.POST("", ec.Create)
			events.GET("/:id", ec.Get)
			events.PUT("/:id", ec.Update)
			events.DELETE("/:id", ec.Delete)

			events.GET("/:id/stats", ec.Stats)
			events.POST("/:id/share", ec.Share)

			events.GET("/:id/guests", gc.ListByEvent)
			events.POST("/:id/guests", gc.Create)
			events.POST("/:id/guests/import", gc.ImportContacts)

			events.GET("/:id/tables", tc.ListByEvent)
			events.POST("/:id/tables", tc.Create)

			events.GET("/:id/campaigns", cmc.ListByEvent)
			events.POST("/:id/campaigns", cmc.Create)
		}

		guests := api.Group("/guests")
		{
			guests.GET("/:id", gc.Get)
			guests.PUT("/:id", gc.Update)
			guests.DELETE("/:id", gc.Delete)
			guests.POST("/:id/invite", gc.SendInvitation)
		}

		tables := api.Group("/tables")
		{
			tables.GET("/:id", tc.Get)
			tables.PUT("/:id", tc.Update)
			tables.DELETE("/:id", tc.Delete)
			tables.POST("/:id/assign", tc.Assign)
			tables.POST("/:id/unassign", tc.Unassign)
		}

		// guest-facing, token gated
		rsvp := api.Group("/rsvp")
		{
			rsvp.GET("/:eventId/:guestId", rc.GetInvitation)
			rsvp.POST("/:eventId/:guestId", rc.SubmitResponse)
			rsvp.POST("/:eventId/:guestId/checkin", rc.CheckIn)
		}

		contacts := api.Group("/contacts")
		{
			contacts.GET("", cc.List)
			contacts.POST("", cc.Create)
			contacts.PUT("/:id", cc.Update)
			contacts.DELETE("/:id", cc.Delete)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", nc.List)
			notifications.PATCH("/:id/read", nc.MarkRead)
			notifications.POST("/read-all", nc.MarkAllRead)
		}

		campaigns := api.Group("/campaigns")
		{
			campaigns.PUT("/:id", cmc.Update)
			campaigns.DELETE("/:id", cmc.Delete)
			campaigns.POST("/:id/send", cmc.Send)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/forgot", controllers.ForgotPassword)
		}
	}

	return r
}
