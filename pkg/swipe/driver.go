package swipe

import (
	"time"

	"github.com/go-drift/swipe/pkg/animation"
)

// scrollAnimation is an eased scroll in progress.
type scrollAnimation struct {
	start, end float64
	startTime  time.Time
	duration   time.Duration
}

// progress returns the linear progress at now, reaching exactly 1 at the
// end of the duration.
func (a scrollAnimation) progress(now time.Time) float64 {
	if a.duration <= 0 {
		return 1
	}
	return min(1, float64(now.Sub(a.startTime))/float64(a.duration))
}

// startDriver starts the frame tick if the container is attached and not
// already ticking.
func (c *Container) startDriver() {
	if !c.attached {
		return
	}
	if c.ticker == nil {
		c.ticker = animation.NewTicker(func(time.Duration) { c.step() })
	}
	if c.ticker.IsActive() {
		return
	}
	c.lastTick = animation.Now()
	c.ticker.Start()
	logger.Debug("swipe driver start", "state", c.state)
}

func (c *Container) stopDriver() {
	if c.ticker == nil || !c.ticker.IsActive() {
		return
	}
	c.ticker.Stop()
	logger.Debug("swipe driver stop", "state", c.state)
}

// step advances the current animation or autoscroll by one frame.
func (c *Container) step() {
	now := animation.Now()
	delta := now.Sub(c.lastTick)
	c.lastTick = now

	switch c.state {
	case StateProgrammaticAnimating:
		t := c.anim.progress(now)
		c.scrollOffset = ClampOffset(
			c.anim.start+(c.anim.end-c.anim.start)*Ease(t),
			c.itemCount, c.wrapEnabled)
		c.writeContentOffset(c.orientation.Point(c.scrollOffset*c.itemExtent(), 0))
		c.update()
		if t == 1 {
			c.settle()
			if c.state != StateAutoscrolling {
				c.stopDriver()
			}
			if c.defersItemViewLoading {
				c.forceRefresh()
				c.update()
			}
			c.delegate.animationEnded()
		}
	case StateAutoscrolling:
		if c.scrollView.IsDragging() {
			return
		}
		c.applyOffset(c.scrollOffset + delta.Seconds()*c.autoscrollRate)
	default:
		c.stopDriver()
	}
}
