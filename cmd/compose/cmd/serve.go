package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-drift/compose/pkg/engine"
)

func init() {
	RegisterCommand(&Command{
		Name:  "serve",
		Short: "Serve engine debug endpoints",
		Long: `Replay the given input against the demo tree, then serve the
engine's debug endpoints until interrupted:

  /health   liveness probe
  /tree     print pass output
  /state    state store entries
  /frames   frame samples (?limit=N&min_ms=X&redraw=true&evicted=true)
  /access   accessibility nodes

Flags:
  --addr ADDR   Listen address (default 127.0.0.1:9999)`,
		Usage: "compose serve [--addr ADDR] [input...]",
		Run:   runServe,
	})
}

const defaultServeAddr = "127.0.0.1:9999"

// serveContext returns the context that ends a serve run.
var serveContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func runServe(args []string) error {
	addr := defaultServeAddr
	var rest []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--addr" {
			if i+1 >= len(args) {
				return fmt.Errorf("--addr requires an address")
			}
			addr = args[i+1]
			i++
			continue
		}
		rest = append(rest, args[i])
	}

	events, err := parseInput(rest)
	if err != nil {
		return err
	}
	s, err := newSession()
	if err != nil {
		return err
	}
	s.replay(events, nil)

	srv := engine.NewDebugServer(s.engine)
	bound, err := srv.Start(addr)
	if err != nil {
		return err
	}

	p := newPalette()
	fmt.Fprintf(stdout, "Serving debug endpoints on %s\n", p.block("http://"+bound.String()))

	ctx, cancel := serveContext()
	defer cancel()
	<-ctx.Done()

	shutdown, done := context.WithTimeout(context.Background(), 2*time.Second)
	defer done()
	return srv.Stop(shutdown)
}
