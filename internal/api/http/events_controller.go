package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/immxrtalbeast/roomgate/internal/notify"
	"github.com/immxrtalbeast/roomgate/internal/service"
	"github.com/immxrtalbeast/roomgate/lib/logger/sl"
)

const eventWriteTimeout = 10 * time.Second

type EventSource interface {
	Subscribe(room string) (*notify.Subscriber, func())
}

// EventsController streams committed room events over a websocket.
type EventsController struct {
	rooms    service.RoomInteractor
	events   EventSource
	upgrader websocket.Upgrader
	log      *slog.Logger
}

func NewEventsController(rooms service.RoomInteractor, events EventSource, allowedOrigins []string, log *slog.Logger) *EventsController {
	if log == nil {
		log = slog.Default()
	}
	return &EventsController{
		rooms:  rooms,
		events: events,
		log:    log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func (c *EventsController) RoomEvents(ctx *gin.Context) {
	const op = "api.http.RoomEvents"
	roomName := ctx.Param("room_name")
	log := c.log.With(slog.String("op", op), slog.String("room", roomName))

	// Subscribe before the existence check so a deletion committed in
	// between still reaches this subscriber and closes it.
	sub, cancel := c.events.Subscribe(roomName)
	defer cancel()

	if err := c.rooms.EnsureRoomExists(ctx.Request.Context(), roomName); err != nil {
		writeError(ctx, err)
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Debug("failed to upgrade connection", sl.Err(err))
		return
	}
	defer conn.Close()

	// The client never sends anything; reading only detects the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case event, ok := <-sub.Events:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "room closed"),
					time.Now().Add(eventWriteTimeout))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(eventWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				log.Debug("failed to write event", sl.Err(err))
				return
			}
		}
	}
}

// originChecker allows any origin when none are configured.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(r *http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
