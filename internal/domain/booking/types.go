package booking

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrInvalidRoomType = errors.New("invalid room type")
)

type Type string

const (
	TypeRestaurant Type = "restaurant"
	TypeHotel      Type = "hotel"
)

func (t Type) String() string {
	return string(t)
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// NewStatus accepts any valid status value. Transitions are deliberately
// unconstrained: an admin may move a booking between any two statuses.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type RoomType string

const (
	RoomStandard     RoomType = "standard"
	RoomDeluxe       RoomType = "deluxe"
	RoomExecutive    RoomType = "executive"
	RoomPresidential RoomType = "presidential"
)

func (r RoomType) String() string {
	return string(r)
}

func (r RoomType) IsValid() bool {
	switch r {
	case RoomStandard, RoomDeluxe, RoomExecutive, RoomPresidential:
		return true
	default:
		return false
	}
}

func NewRoomType(s string) (RoomType, error) {
	rt := RoomType(s)
	if !rt.IsValid() {
		return "", ErrInvalidRoomType
	}
	return rt, nil
}
