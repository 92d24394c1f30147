package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SwipeArea wraps the browse surface and turns drags into gestures
type SwipeArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	handler *GestureHandler

	dragging bool
	lastPos  fyne.Position
}

// NewSwipeArea creates a swipe-sensitive wrapper around content
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	sa := &SwipeArea{
		content: content,
		handler: NewGestureHandler(onGesture),
	}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer renders the wrapped content
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// Dragged tracks an in-progress drag
func (sa *SwipeArea) Dragged(event *fyne.DragEvent) {
	if !sa.dragging {
		sa.dragging = true
		sa.handler.PointerDown(event.Position)
	}
	sa.lastPos = event.Position
}

// DragEnd classifies the completed drag
func (sa *SwipeArea) DragEnd() {
	if !sa.dragging {
		return
	}
	sa.dragging = false
	sa.handler.PointerUp(sa.lastPos)
}
