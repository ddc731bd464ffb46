package cmd

import (
	"fmt"

	"github.com/go-drift/swipe/cmd/swipe/internal/script"
)

func init() {
	RegisterCommand(&Command{
		Name:  "trace",
		Short: "Print the event log of a scripted scenario",
		Long: `Play a scripted scenario headlessly and print every container event.

The script is a YAML file describing the container and a list of steps:

  items: 8
  item_size: {width: 120, height: 80}
  bounds: {width: 360, height: 80}
  options:
    wrap: true
  steps:
    - drag: -150
    - release: true
    - frames: 10
    - settle: true
    - scroll_to: 3
      duration: 300ms
    - frames: 20

Steps: drag (pixels), release (momentum), settle, scroll_to, scroll_by,
autoscroll (items/s), tap (content pixels), reload (new item count) and
frames (16ms each). Time is simulated, so the log is reproducible.`,
		Usage: "swipe trace <script.yaml>",
		Run:   runTrace,
	})
}

func runTrace(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("trace requires exactly one script file")
	}
	s, err := script.Load(args[0])
	if err != nil {
		return err
	}
	return s.Run(stdout)
}
