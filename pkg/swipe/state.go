package swipe

import (
	"fmt"
	"math"
)

// ScrollState is the container's scrolling mode.
//
//	                 drag begin              drag end (momentum)
//	Idle ─────────────────────► UserDragging ────────────────► Decelerating
//	 ▲ ▲                              │                             │
//	 │ └──── drag end (no momentum) ──┘                             │
//	 └───────────────────── deceleration end ───────────────────────┘
//
// Animated scroll requests enter ProgrammaticAnimating until the eased
// curve reaches its end. A nonzero autoscroll rate keeps the container in
// Autoscrolling whenever it would otherwise be Idle.
type ScrollState int

const (
	StateIdle ScrollState = iota
	StateUserDragging
	StateDecelerating
	StateProgrammaticAnimating
	StateAutoscrolling
)

func (s ScrollState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUserDragging:
		return "dragging"
	case StateDecelerating:
		return "decelerating"
	case StateProgrammaticAnimating:
		return "animating"
	case StateAutoscrolling:
		return "autoscrolling"
	default:
		return fmt.Sprintf("ScrollState(%d)", int(s))
	}
}

// decelerationSnap is how close to a whole item a settled offset must be
// to be snapped onto it.
const decelerationSnap = 0.01

func (c *Container) setState(s ScrollState) {
	if c.state == s {
		return
	}
	logger.Debug("swipe state", "from", c.state, "to", s, "offset", c.scrollOffset)
	c.state = s
	if c.state == StateProgrammaticAnimating || c.state == StateAutoscrolling {
		c.startDriver()
	}
}

// settle returns the container to its resting state: Autoscrolling when a
// rate is set, Idle otherwise.
func (c *Container) settle() {
	if c.autoscrollRate != 0 {
		c.setState(StateAutoscrolling)
	} else {
		c.setState(StateIdle)
	}
}

// hostState derives the state from the host's own gesture flags.
func (c *Container) hostState() {
	switch {
	case c.scrollView.IsDragging():
		c.setState(StateUserDragging)
	case c.scrollView.IsDecelerating():
		c.setState(StateDecelerating)
	default:
		c.settle()
	}
}

// forceRefresh makes the next scroll update recompute the index and
// visible set even when loading is deferred.
func (c *Container) forceRefresh() {
	c.lastUpdateOffset = c.scrollOffset - 1
}

// update runs a full scroll update for the current offset.
func (c *Container) update() {
	c.correctScrollOffset()

	if !c.defersItemViewLoading ||
		math.Abs(MinDistance(c.lastUpdateOffset, c.scrollOffset, c.itemCount, c.wrapEnabled)) >= 1 {
		c.currentItemIndex = ClampIndex(int(math.Round(c.scrollOffset)), c.itemCount, c.wrapEnabled)
		c.lastUpdateOffset = float64(c.currentItemIndex)
		c.reconcile(c.visibleRange())
	}

	c.layoutItems()
	c.delegate.scrolled(c.scrollOffset)

	if c.previousItemIndex != c.currentItemIndex {
		c.previousItemIndex = c.currentItemIndex
		c.delegate.indexChanged(c.currentItemIndex)
	}
}

// DidScroll must be called by the host whenever the native content offset
// changes, including changes made by the container itself.
func (c *Container) DidScroll() {
	main := c.orientation.Main(c.scrollView.ContentOffset())
	if c.suppressEcho {
		c.nativeOffset = main
		return
	}
	if c.state == StateProgrammaticAnimating {
		c.hostState()
	}

	delta := main - c.nativeOffset
	c.nativeOffset = main
	if extent := c.itemExtent(); extent > 0 {
		if c.wrapEnabled {
			c.scrollOffset += delta / extent
		} else {
			c.scrollOffset = main / extent
		}
	}
	c.update()
}

// WillBeginDragging must be called by the host when a user drag starts.
func (c *Container) WillBeginDragging() {
	c.setState(StateUserDragging)
	c.delegate.dragBegan()
	c.forceRefresh()
	c.update()
}

// DidEndDragging must be called by the host when a user drag ends.
func (c *Container) DidEndDragging(willDecelerate bool) {
	if willDecelerate {
		c.setState(StateDecelerating)
	} else {
		c.settle()
		c.forceRefresh()
		c.update()
	}
	c.delegate.dragEnded(willDecelerate)
}

// WillBeginDecelerating must be called by the host when momentum
// scrolling starts.
func (c *Container) WillBeginDecelerating() {
	c.setState(StateDecelerating)
	c.delegate.decelerateBegan()
}

// DidEndDecelerating must be called by the host when momentum scrolling
// stops.
func (c *Container) DidEndDecelerating() {
	if whole := math.Round(c.scrollOffset); math.Abs(c.scrollOffset-whole) < decelerationSnap {
		c.scrollOffset = whole
	}
	c.settle()
	c.forceRefresh()
	c.update()
	c.delegate.decelerateEnded()
}
