package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler turns raw pointer events into navigation gestures.
// The browse surface feeds it press/release positions; a horizontal
// right swipe maps to back navigation.
type GestureHandler struct {
	onGesture func(GestureType)

	// Pointer tracking
	pressTime time.Time
	pressPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// PointerDown records the start of a press or drag
func (gh *GestureHandler) PointerDown(pos fyne.Position) {
	gh.pressTime = time.Now()
	gh.pressPos = pos
}

// PointerUp classifies the completed press or drag into a gesture
func (gh *GestureHandler) PointerUp(pos fyne.Position) {
	if gh.pressTime.IsZero() {
		return
	}
	duration := time.Since(gh.pressTime)
	gh.pressTime = time.Time{}

	dx := pos.X - gh.pressPos.X
	dy := pos.Y - gh.pressPos.Y
	distance := abs(dx) + abs(dy)

	if distance >= gh.swipeThreshold {
		gh.detectSwipeDirection(dx, dy)
		return
	}

	if duration >= gh.longPressDuration {
		gh.triggerGesture(GestureLongPress)
		return
	}

	gh.triggerGesture(GestureTap)
}

// PointerCancel resets tracking
func (gh *GestureHandler) PointerCancel() {
	gh.pressTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	if abs(dx) > abs(dy) {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
	} else {
		if dy > 0 {
			gh.triggerGesture(GestureSwipeDown)
		} else {
			gh.triggerGesture(GestureSwipeUp)
		}
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
