// Package testing provides host fakes for testing swipe and pager
// containers without a real view tree.
//
// # Quick Start
//
// Build a container on a fake scroll view, attach it and lay it out:
//
//	func TestCarousel(t *testing.T) {
//	    clock := swipetest.UseFakeClock(t)
//	    sv := swipetest.NewFakeScrollView()
//	    c := swipe.New(sv)
//	    sv.Observer = c
//	    c.SetDataSource(swipetest.NewFakeDataSource(5, geometry.Size{Width: 100, Height: 50}))
//	    c.SetBounds(geometry.Size{Width: 100, Height: 50})
//	    c.Attach()
//	    c.LayoutIfNeeded()
//
//	    c.ScrollToItem(2, 300*time.Millisecond)
//	    swipetest.StepFrames(clock, 40, 10*time.Millisecond)
//	}
//
// # Animation Testing
//
// [UseFakeClock] installs a [FakeClock] as the animation clock for the
// duration of a test; [StepFrames] advances it and runs one frame of
// every active ticker per step.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import swipetest "github.com/go-drift/swipe/pkg/testing"
package testing
