package domain

// RoomMember is a display-name directory record the browser keeps per media
// uid. It carries no membership authority.
type RoomMember struct {
	ID       uint64 `json:"-"`
	Name     string `json:"name"`
	UID      string `json:"uid"`
	RoomName string `json:"room_name"`
}
