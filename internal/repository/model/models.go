package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username  string    `gorm:"size:150;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

type Room struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name          string        `gorm:"column:room_name;size:255;uniqueIndex;not null"`
	CurrentHostID *uuid.UUID    `gorm:"type:uuid;index"`
	CurrentHost   *User         `gorm:"foreignKey:CurrentHostID;constraint:OnDelete:SET NULL"`
	Token         string        `gorm:"size:1024;not null"`
	UID           uint32        `gorm:"not null"`
	CreatedAt     time.Time     `gorm:"not null"`
	Participants  []Participant `gorm:"constraint:OnDelete:CASCADE"`
	JoinRequests  []JoinRequest `gorm:"constraint:OnDelete:CASCADE"`
}

type Participant struct {
	RoomID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	JoinedAt time.Time `gorm:"not null"`
}

func (Participant) TableName() string {
	return "room_participants"
}

type JoinRequest struct {
	ID        uint64     `gorm:"primaryKey;autoIncrement"`
	RoomID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_join_requests_room_user"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_join_requests_room_user"`
	User      *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Status    string     `gorm:"size:16;not null;index"`
	CreatedAt time.Time  `gorm:"not null"`
	DecidedAt *time.Time
}

type RoomMember struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:200;not null;index"`
	UID      string `gorm:"size:200;not null;index:idx_room_members_room_uid"`
	RoomName string `gorm:"size:200;not null;index:idx_room_members_room_uid"`
}

// All lists models in migration order.
func All() []any {
	return []any{&User{}, &Room{}, &Participant{}, &JoinRequest{}, &RoomMember{}}
}
