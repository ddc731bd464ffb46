package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/swipe/pkg/animation"
)

// This example shows how a page transition drives a translation with a tween.
func ExampleAnimationController_withTween() {
	controller := animation.NewAnimationController(300 * time.Millisecond)
	slide := animation.TweenFloat64(320, 0)

	controller.AddListener(func() {
		_ = slide.Transform(controller)
	})

	controller.Forward()
	controller.Dispose()
}

// This example shows how to listen for animation status changes.
func ExampleAnimationController_statusListener() {
	controller := animation.NewAnimationController(300 * time.Millisecond)

	controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			fmt.Println("slide finished")
		}
	})

	controller.Forward()
	controller.Dispose()
}

// This example shows the host frame loop that advances animations.
func ExampleStepTickers() {
	frames := time.NewTicker(16 * time.Millisecond)
	defer frames.Stop()

	for range 3 {
		<-frames.C
		animation.StepTickers()
	}
}
