package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/immxrtalbeast/roomgate/internal/domain"
	"github.com/immxrtalbeast/roomgate/internal/service"
)

type ParticipantResponse struct {
	Username string `json:"username"`
	IsHost   bool   `json:"is_host"`
}

type PendingRequestResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ParticipantsToApi(views []service.ParticipantView) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ParticipantResponse{Username: v.Username, IsHost: v.IsHost})
	}
	return out
}

func PendingRequestsToApi(reqs []*domain.JoinRequest) []PendingRequestResponse {
	out := make([]PendingRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, PendingRequestResponse{
			ID:        r.ID,
			Name:      r.Username,
			UserID:    r.UserID,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}
