package handlers

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/i-am-Shekinah/eventify/internal/middlewares"
	"github.com/i-am-Shekinah/eventify/internal/repository"
	"github.com/i-am-Shekinah/eventify/pkg/auth"
)

// NewRouter wires the full HTTP surface. Everything except signup/login
// sits behind the bearer-token middleware.
func NewRouter(tokens *auth.Manager, users *repository.UserRepo, ah *AuthHandler, eh *EventHandler, ph *ParticipantHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLog(), otelgin.Middleware("eventify"))

	api := r.Group("/api")
	api.POST("/auth/signup", ah.Signup)
	api.POST("/auth/login", ah.Login)

	secured := api.Group("")
	secured.Use(middlewares.Authenticate(tokens, users))
	{
		secured.GET("/events", eh.List)
		secured.POST("/events", eh.Create)
		secured.GET("/events/search", eh.Search)
		secured.GET("/events/:id", eh.Get)
		secured.PUT("/events/:id", eh.Replace)
		secured.PATCH("/events/:id", eh.Patch)
		secured.DELETE("/events/:id", eh.Delete)

		secured.POST("/participants/upload/:eventId", ph.Upload)
		secured.GET("/participants/event/:eventId", ph.List)
		secured.PATCH("/participants/event/:eventId/:participantId/status", ph.UpdateStatus)
	}
	return r
}
