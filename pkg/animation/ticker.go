// Package animation provides the frame-timing primitives used by the swipe
// and pager containers.
//
// # Core Components
//
//   - [Ticker]: a per-frame callback that is active only between Start and
//     Stop. The host's frame loop advances every active ticker with
//     [StepTickers], so nothing runs between frames and nothing runs at all
//     once every ticker has stopped.
//
//   - [Clock]: the time source read by tickers and containers. Tests swap in
//     a fake clock with [SetClock] to make animations deterministic.
//
//   - Curves: easing functions such as [EaseInOutCubic] (the swipe scroll
//     curve) and [CubicBezier] presets.
//
//   - [AnimationController] and [Tween]: a duration-based 0..1 driver and
//     value interpolation, used for page slide transitions.
//
// # Host Integration
//
// A host calls StepTickers once per frame (about 60 Hz) from the same
// goroutine that delivers input, which keeps all container state
// single-threaded:
//
//	for range frames {
//	    animation.StepTickers()
//	    render()
//	}
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host loop.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy so callbacks may start or stop tickers.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		// A callback earlier in this frame may have stopped this one.
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
