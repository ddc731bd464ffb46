package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-drift/swipe/cmd/swipe/internal/config"
	"github.com/go-drift/swipe/cmd/swipe/internal/termhost"
	"github.com/go-drift/swipe/pkg/label"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Show an interactive carousel",
		Long: `Show an interactive carousel in the terminal.

The carousel is configured by swipe.yaml in the project directory (the
given directory, or the nearest directory with a go.mod). Without a
configuration file a default list of items is shown.

Keys:
  left/right      drag by one step (up/down when vertical)
  n, p            scroll to the next or previous item
  0-9             jump to an item
  a               toggle autoscroll
  w               toggle wrapping
  q, esc          quit

Drag with the mouse to scroll; click an item to select it.`,
		Usage: "swipe run [dir]",
		Run:   runCarousel,
	})
}

func runCarousel(args []string) error {
	dir, err := projectDir(args)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	app := termhost.New(screen, label.NewSource(cfg.Items, cfg.Padding), cfg.Options)
	app.Title = cfg.Title
	defer app.Close()

	return app.Run()
}

// projectDir returns the directory named in args, or the project root
// containing the working directory.
func projectDir(args []string) (string, error) {
	switch len(args) {
	case 0:
		return config.FindProjectRoot()
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("run takes at most one directory (got %d arguments)", len(args))
	}
}
