package model

// NotificationPosition names a screen corner or edge for toast placement
type NotificationPosition string

const (
	PositionTopLeft      NotificationPosition = "top-left"
	PositionTopCenter    NotificationPosition = "top-center"
	PositionTopRight     NotificationPosition = "top-right"
	PositionBottomLeft   NotificationPosition = "bottom-left"
	PositionBottomCenter NotificationPosition = "bottom-center"
	PositionBottomRight  NotificationPosition = "bottom-right"
)

// DefaultNotificationPosition is used when no position is configured
const DefaultNotificationPosition = PositionBottomRight

// NotificationData describes one toast notification. The ID guards
// against a stale auto-hide timer dismissing a newer toast.
type NotificationData struct {
	ID       string
	Body     string
	Position NotificationPosition
}

// ValidPosition reports whether p is one of the known positions
func ValidPosition(p NotificationPosition) bool {
	switch p {
	case PositionTopLeft, PositionTopCenter, PositionTopRight,
		PositionBottomLeft, PositionBottomCenter, PositionBottomRight:
		return true
	}
	return false
}
