package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/compose/cmd/compose/internal/config"
	"github.com/go-drift/compose/cmd/compose/internal/demo"
	"github.com/go-drift/compose/pkg/engine"
	"github.com/go-drift/compose/pkg/errors"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/input"
)

// session is one engine run over the demo tree, configured from the
// project directory.
type session struct {
	cfg    *config.Resolved
	engine *engine.Engine
	trace  *engine.FrameTraceBuffer
}

func resolveConfig() (*config.Resolved, error) {
	dir := projectDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = config.FindProjectRoot(wd)
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		errors.Report(&errors.ComposeError{Op: "config.Resolve", Kind: errors.KindConfig, Err: err})
		return nil, err
	}
	return cfg, nil
}

func newSession() (*session, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose})

	trace := engine.NewFrameTraceBuffer(0, 0)
	e := engine.New(demo.App,
		engine.WithAppName(cfg.AppName),
		engine.WithGCGrace(cfg.GCGrace),
		engine.WithSize(graphics.Size{Width: cfg.Width, Height: cfg.Height}),
		engine.WithVerbose(cfg.Verbose),
		engine.WithFrameTrace(trace),
		engine.WithOutput(stdout),
	)
	return &session{cfg: cfg, engine: e, trace: trace}, nil
}

// parseInput turns CLI arguments into events: "@Path/To/Command" is a menu
// command, anything else a key chord.
func parseInput(args []string) ([]input.Event, error) {
	events := make([]input.Event, 0, len(args))
	for _, arg := range args {
		if name, ok := strings.CutPrefix(arg, "@"); ok {
			if name == "" {
				return nil, fmt.Errorf("empty command name in %q", arg)
			}
			events = append(events, input.CommandEvent{Name: name})
			continue
		}
		k, err := input.ParseKey(arg)
		if err != nil {
			return nil, err
		}
		events = append(events, input.KeyEvent{Key: k})
	}
	return events, nil
}

// replay runs an initial frame and then one frame per event, calling
// report after each event frame when it is non-nil.
func (s *session) replay(events []input.Event, report func(ev input.Event, redraw bool)) {
	s.engine.Frame()
	for _, ev := range events {
		_, redraw := s.engine.Frame(ev)
		if report != nil {
			report(ev, redraw)
		}
	}
}

func describeEvent(ev input.Event) string {
	switch ev := ev.(type) {
	case input.KeyEvent:
		return ev.Key.String()
	case input.CommandEvent:
		return "@" + ev.Name
	default:
		return fmt.Sprintf("%T", ev)
	}
}
