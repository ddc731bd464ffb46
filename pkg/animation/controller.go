package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an AnimationController.
//
//	            Forward()              last frame
//	Dismissed ───────────► Forward ───────────────► Completed
//	    ▲                                               │
//	    └───────────────────── Reset() ─────────────────┘
type AnimationStatus int

const (
	// AnimationDismissed means the controller rests at 0.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the controller is running toward 1.
	AnimationForward
	// AnimationCompleted means the controller rests at 1.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController produces a value running from 0 to 1 over Duration,
// shaped by Curve, one step per frame.
//
// Call Dispose when done to stop the ticker and drop listeners.
type AnimationController struct {
	// Value is the current (curved) animation value.
	Value float64

	// Duration is the length of the animation.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	status          AnimationStatus
	ticker          *Ticker
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		status:          AnimationDismissed,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// Forward restarts the animation from 0 toward 1.
func (c *AnimationController) Forward() {
	c.Stop()
	c.Value = 0
	c.setStatus(AnimationForward)
	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = min(1, float64(elapsed)/float64(c.Duration))
	}
	c.Value = progress
	if c.Curve != nil {
		c.Value = c.Curve(progress)
	}
	c.notifyListeners()

	if progress >= 1 {
		c.Stop()
		c.setStatus(AnimationCompleted)
	}
}

// Reset stops the animation and returns the value to 0.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = 0
	c.setStatus(AnimationDismissed)
	c.notifyListeners()
}

// Stop freezes the animation at its current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true while the controller is ticking.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and releases its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = make(map[int]func())
	c.statusListeners = make(map[int]func(AnimationStatus))
}
