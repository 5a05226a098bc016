package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/roomgate/internal/api/http/converter"
	"github.com/immxrtalbeast/roomgate/internal/service"
)

type RoomController struct {
	rooms service.RoomInteractor
}

func NewRoomController(rooms service.RoomInteractor) *RoomController {
	return &RoomController{rooms: rooms}
}

func (c *RoomController) GetParticipants(ctx *gin.Context) {
	views, err := c.rooms.GetParticipants(ctx.Request.Context(), ctx.Param("room_name"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"participants": converter.ParticipantsToApi(views),
	})
}

func (c *RoomController) RemoveParticipant(ctx *gin.Context) {
	type request struct {
		Name     string `json:"name" binding:"required"`
		UID      string `json:"UID"`
		RoomName string `json:"room_name" binding:"required"`
	}

	user, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	target := service.RemoveTarget{Username: req.Name, UID: req.UID}
	if err := c.rooms.RemoveParticipant(ctx.Request.Context(), req.RoomName, target, user.ID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "participant removed"})
}

func (c *RoomController) ChangeHost(ctx *gin.Context) {
	type request struct {
		RoomName string `json:"room_name" binding:"required"`
		Name     string `json:"name" binding:"required"`
	}

	user, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := c.rooms.ChangeHost(ctx.Request.Context(), req.RoomName, req.Name, user.ID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "host changed to " + req.Name})
}

func (c *RoomController) LeaveRoom(ctx *gin.Context) {
	user, err := currentUser(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	if err := c.rooms.Leave(ctx.Request.Context(), ctx.Param("room_name"), user.ID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "left room"})
}
