package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/service"
)

type CredentialController struct {
	rooms service.RoomInteractor
}

func NewCredentialController(rooms service.RoomInteractor) *CredentialController {
	return &CredentialController{rooms: rooms}
}

// GetToken issues a media credential. Hosting creates the room.
func (c *CredentialController) GetToken(ctx *gin.Context) {
	user, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	action, err := domain.ParseAction(ctx.Query("actionType"))
	if err != nil {
		writeError(ctx, err)
		return
	}

	cred, err := c.rooms.IssueCredential(ctx.Request.Context(), ctx.Query("channel"), action, user)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cred)
}

// Lobby renders the entry page. Unknown action types fall back to join.
func (c *CredentialController) Lobby(ctx *gin.Context) {
	action, err := domain.ParseAction(ctx.Query("actionType"))
	if err != nil {
		action = domain.ActionJoin
	}
	ctx.HTML(http.StatusOK, lobbyTemplateName, gin.H{"ActionType": string(action)})
}
