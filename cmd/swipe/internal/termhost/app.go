package termhost

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-drift/swipe/pkg/animation"
	"github.com/go-drift/swipe/pkg/geometry"
	"github.com/go-drift/swipe/pkg/label"
	"github.com/go-drift/swipe/pkg/swipe"
	"go.uber.org/atomic"
)

const (
	frameInterval  = 16 * time.Millisecond
	scrollDuration = 300 * time.Millisecond
	// keyStep is the fraction of a page one arrow key drags by.
	keyStep = 0.6
	// defaultAutoscrollRate is used by the autoscroll toggle when the
	// options leave the rate at zero.
	defaultAutoscrollRate = 1.0
)

// App is an interactive label carousel on a tcell screen. The title takes
// the first row, the status line the last, and the carousel the rows in
// between.
type App struct {
	Title string

	screen    tcell.Screen
	view      *ScrollView
	container *swipe.Container
	source    *label.Source

	autoscrollRate float64
	status         string
	lastFrame      time.Time
	quit           *atomic.Bool

	pressed      bool
	pressX       int
	pressY       int
	lastX, lastY int
}

// New builds an app showing source with opts. The screen must already be
// initialised.
func New(screen tcell.Screen, source *label.Source, opts swipe.Options) *App {
	a := &App{
		screen:         screen,
		source:         source,
		view:           NewScrollView(opts.Orientation),
		autoscrollRate: opts.AutoscrollRate,
		quit:           atomic.NewBool(false),
	}
	if a.autoscrollRate == 0 {
		a.autoscrollRate = defaultAutoscrollRate
	}

	a.container = swipe.New(a.view)
	a.view.Observer = a.container
	a.container.SetDataSource(source)
	a.container.SetDelegate(swipe.Delegate{
		PreferredItemSize: source.ItemSize,
		OnCurrentIndexChanged: func(index int) {
			a.status = fmt.Sprintf("showing %q", a.itemText(index))
		},
		OnItemSelected: func(index int) {
			a.status = fmt.Sprintf("selected %q", a.itemText(index))
		},
		OnAnimationEnd: func() {
			a.status = "scroll finished"
		},
	})
	a.container.Apply(opts)
	a.container.Attach()
	a.resize()
	a.lastFrame = animation.Now()
	return a
}

// Container returns the carousel's container.
func (a *App) Container() *swipe.Container { return a.container }

// ScrollView returns the carousel's scroll view.
func (a *App) ScrollView() *ScrollView { return a.view }

// Status returns the message shown on the status line.
func (a *App) Status() string { return a.status }

func (a *App) itemText(index int) string {
	if index < 0 || index >= len(a.source.Items) {
		return ""
	}
	return a.source.Items[index]
}

// Run processes events until the user quits or the screen is finalised.
// A background pump posts one interrupt event per frame; all container
// work happens on the calling goroutine.
func (a *App) Run() error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	a.quit.Store(false)
	done := make(chan struct{})
	go a.pump(done)
	defer func() {
		a.quit.Store(true)
		<-done
	}()

	a.Frame()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ev) {
			return nil
		}
	}
}

func (a *App) pump(done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for range ticker.C {
		if a.quit.Load() {
			return
		}
		// A full queue already holds a pending frame.
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// Close stops the container's frame tick.
func (a *App) Close() {
	a.quit.Store(true)
	a.container.Detach()
}

// HandleEvent applies one event and reports whether the app keeps running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		a.Frame()
	case *tcell.EventResize:
		a.resize()
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

// Frame advances momentum and animations to the current time, lays the
// container out and draws it.
func (a *App) Frame() {
	now := animation.Now()
	a.view.Step(now.Sub(a.lastFrame))
	a.lastFrame = now
	animation.StepTickers()
	a.container.LayoutIfNeeded()
	a.Draw()
}

func (a *App) resize() {
	w, h := a.screen.Size()
	rows := max(h-2, 1)
	a.container.SetBounds(geometry.Size{Width: float64(w * CellWidth), Height: float64(rows * CellHeight)})
}

// Draw renders the title, the carousel and the status line.
func (a *App) Draw() {
	w, h := a.screen.Size()
	a.screen.Clear()

	drawText(a.screen, 0, 0, w, a.Title, textStyle.Bold(true))
	clip := cellRect{x0: 0, y0: 1, x1: w, y1: max(h-1, 1)}
	a.view.Draw(a.screen, geometry.Offset{Y: CellHeight}, clip, a.container.CurrentItemView())

	c := a.container
	line := fmt.Sprintf("%d/%d  %-13s offset %6.2f  %s",
		c.CurrentItemIndex()+1, c.ItemCount(), c.State(), c.ScrollOffset(), a.status)
	if c.ItemCount() == 0 {
		line = "no items"
	}
	drawText(a.screen, 0, h-1, w, line, dimStyle)
	a.screen.Show()
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	c := a.container
	horizontal := a.view.Axis == geometry.AxisHorizontal

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		if horizontal {
			a.dragStep(-1)
		}
	case tcell.KeyRight:
		if horizontal {
			a.dragStep(1)
		}
	case tcell.KeyUp:
		if !horizontal {
			a.dragStep(-1)
		}
	case tcell.KeyDown:
		if !horizontal {
			a.dragStep(1)
		}
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q':
			return false
		case r == 'n':
			c.ScrollByItems(1, scrollDuration)
		case r == 'p':
			c.ScrollByItems(-1, scrollDuration)
		case r >= '0' && r <= '9':
			c.SetCurrentItemIndex(int(r - '0'))
		case r == 'a':
			if c.AutoscrollRate() != 0 {
				c.SetAutoscrollRate(0)
				a.status = "autoscroll off"
			} else {
				c.SetAutoscrollRate(a.autoscrollRate)
				a.status = fmt.Sprintf("autoscroll %.1f items/s", a.autoscrollRate)
			}
		case r == 'w':
			wrap := !c.Options().WrapEnabled
			c.SetWrapEnabled(wrap)
			a.status = fmt.Sprintf("wrap %v", wrap)
		}
	}
	return true
}

// dragStep performs a short drag in direction dir, as if a finger moved
// the content and lifted without flicking.
func (a *App) dragStep(dir float64) {
	now := animation.Now()
	a.view.BeginDrag(now)
	a.view.DragBy(dir*keyStep*a.view.pageExtent(), now)
	a.view.EndDrag()
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	now := animation.Now()

	if ev.Buttons()&tcell.Button1 == 0 {
		if !a.pressed {
			return
		}
		a.pressed = false
		if a.view.IsDragging() {
			a.view.EndDrag()
			return
		}
		a.tap(a.pressX, a.pressY)
		return
	}

	if !a.pressed {
		a.pressed = true
		a.pressX, a.pressY = x, y
		a.lastX, a.lastY = x, y
		return
	}

	var delta float64
	if a.view.Axis == geometry.AxisHorizontal {
		delta = float64(a.lastX-x) * CellWidth
	} else {
		delta = float64(a.lastY-y) * CellHeight
	}
	a.lastX, a.lastY = x, y
	if delta == 0 {
		return
	}
	if !a.view.IsDragging() {
		a.view.BeginDrag(now)
	}
	a.view.DragBy(delta, now)
}

// tap selects the item under the cell at x, y.
func (a *App) tap(x, y int) {
	frame := a.view.Frame()
	offset := a.view.ContentOffset()
	point := geometry.Offset{
		X: (float64(x)+0.5)*CellWidth - frame.Left + offset.X,
		Y: (float64(y)+0.5)*CellHeight - CellHeight - frame.Top + offset.Y,
	}
	for _, v := range a.view.Subviews() {
		if v.Frame().Contains(point) && !a.container.ShouldReceiveTouch(v) {
			return
		}
	}
	a.container.DidTap(point)
}
