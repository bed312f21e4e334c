package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
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

// GestureHandler classifies a touch down/up pair into a gesture.
type GestureHandler struct {
	onGesture func(GestureType)
	now       func() time.Time

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		now:               time.Now,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown starts tracking a gesture.
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.AbsolutePosition
}

// TouchUp finishes the gesture started by TouchDown.
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	duration := gh.now().Sub(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	dx := event.AbsolutePosition.X - gh.touchStartPos.X
	dy := event.AbsolutePosition.Y - gh.touchStartPos.Y
	swiped := dx*dx+dy*dy >= gh.swipeThreshold*gh.swipeThreshold

	switch {
	case swiped:
		gh.detectSwipeDirection(dx, dy)
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(*mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
		return
	}
	if dy > 0 {
		gh.triggerGesture(GestureSwipeDown)
	} else {
		gh.triggerGesture(GestureSwipeUp)
	}
}

func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}
