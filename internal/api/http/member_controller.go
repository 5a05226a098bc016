package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/immxrtalbeast/roomgate/internal/service"
)

type MemberController struct {
	members service.MemberInteractor
}

func NewMemberController(members service.MemberInteractor) *MemberController {
	return &MemberController{members: members}
}

type memberRequest struct {
	Name     string `json:"name" binding:"required"`
	UID      string `json:"UID" binding:"required"`
	RoomName string `json:"room_name" binding:"required"`
}

func (c *MemberController) CreateMember(ctx *gin.Context) {
	var req memberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member, err := c.members.CreateMember(ctx.Request.Context(), req.Name, req.UID, req.RoomName)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"name": member.Name})
}

func (c *MemberController) GetMember(ctx *gin.Context) {
	member, err := c.members.GetMember(ctx.Request.Context(), ctx.Query("room_name"), ctx.Query("UID"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"name": member.Name})
}

func (c *MemberController) DeleteMember(ctx *gin.Context) {
	var req memberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := c.members.DeleteMember(ctx.Request.Context(), req.RoomName, req.Name, req.UID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "member deleted"})
}

func (c *MemberController) GetUIDByUsername(ctx *gin.Context) {
	uid, err := c.members.GetUIDByUsername(ctx.Request.Context(), ctx.Query("room_name"), ctx.Query("username"))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"uid": uid})
}
