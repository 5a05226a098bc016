package http

import (
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/roomgate/internal/config"
)

type Controllers struct {
	Auth        *Authenticator
	Credentials *CredentialController
	Rooms       *RoomController
	Joins       *JoinController
	Members     *MemberController
	Events      *EventsController
}

func SetupRouter(cfg *config.Config, c Controllers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.HTTP.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"Origin",
		"Accept",
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.SetHTMLTemplate(lobbyTemplate)

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/lobby", c.Credentials.Lobby)

	throttle := joinRateLimiter(cfg.RateLimit.PerSecond)

	api := router.Group("/", c.Auth.RequireUser())

	api.GET("/get_token", c.Credentials.GetToken)

	api.POST("/join_room/:room_name", throttle, c.Joins.JoinRoom)
	api.GET("/check_pending_requests/:room_name", c.Joins.CheckPendingRequests)
	api.POST("/approve_join_request/:room_name/:request_id", throttle, c.Joins.ApproveJoinRequest)
	api.GET("/check_join_request_status/:room_name/:user_id", c.Joins.CheckJoinRequestStatus)

	api.GET("/get_participants/:room_name", c.Rooms.GetParticipants)
	api.POST("/remove_participant_by_name", c.Rooms.RemoveParticipant)
	api.POST("/change_host", c.Rooms.ChangeHost)
	api.POST("/leave_room/:room_name", c.Rooms.LeaveRoom)

	api.POST("/create_member", c.Members.CreateMember)
	api.GET("/get_member", c.Members.GetMember)
	api.POST("/delete_member", c.Members.DeleteMember)
	api.GET("/get_uid_by_username", c.Members.GetUIDByUsername)

	api.GET("/room_events/:room_name", c.Events.RoomEvents)

	return router
}

func joinRateLimiter(perSecond uint) gin.HandlerFunc {
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: perSecond,
	})
	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: func(ctx *gin.Context, info ratelimit.Info) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, try again in " + time.Until(info.ResetTime).Round(time.Millisecond).String(),
			})
		},
		KeyFunc: func(ctx *gin.Context) string {
			if user, err := currentUser(ctx); err == nil {
				return user.ID.String()
			}
			return ctx.ClientIP()
		},
	})
}
