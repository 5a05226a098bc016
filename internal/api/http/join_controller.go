package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/api/http/converter"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/service"
)

type JoinController struct {
	joins   service.JoinInteractor
	roomURL string
}

// NewJoinController takes the page approved users are sent to; the room name
// is passed as the "room" query parameter.
func NewJoinController(joins service.JoinInteractor, roomURL string) *JoinController {
	return &JoinController{joins: joins, roomURL: roomURL}
}

func (c *JoinController) JoinRoom(ctx *gin.Context) {
	user, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	outcome, err := c.joins.RequestJoin(ctx.Request.Context(), ctx.Param("room_name"), user)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if !outcome.Admitted() {
		body := gin.H{"status": "pending_approval"}
		if outcome.Request != nil {
			body["request_id"] = outcome.Request.ID
		}
		ctx.JSON(http.StatusForbidden, body)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "approved"})
}

func (c *JoinController) CheckPendingRequests(ctx *gin.Context) {
	user, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	pending, err := c.joins.ListPending(ctx.Request.Context(), ctx.Param("room_name"), user.ID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"pending_requests": converter.PendingRequestsToApi(pending.Requests),
		"is_host":          pending.IsHost,
	})
}

func (c *JoinController) ApproveJoinRequest(ctx *gin.Context) {
	type request struct {
		Approve *bool `json:"approve" binding:"required"`
	}

	user, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	requestID, err := strconv.ParseUint(ctx.Param("request_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	decided, err := c.joins.Decide(ctx.Request.Context(), ctx.Param("room_name"), requestID, *req.Approve, user.ID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "join request " + string(decided.Status)})
}

func (c *JoinController) CheckJoinRequestStatus(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	roomName := ctx.Param("room_name")
	req, err := c.joins.CheckStatus(ctx.Request.Context(), roomName, userID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	body := gin.H{"join_status": string(req.Status)}
	if req.Status == domain.JoinStatusApproved {
		body["redirect_url"] = c.roomURL + "?room=" + url.QueryEscape(roomName)
	}
	ctx.JSON(http.StatusOK, body)
}
