package cmd

import (
	"fmt"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show resolved configuration",
		Long: `Show the configuration the other commands run with.

Settings come from compose.yaml or compose.toml in the project directory
(the enclosing Go module root, or --dir). The app name defaults to the
last element of the module path.`,
		Usage: "compose config",
		Run:   runConfig,
	})
}

func runConfig(args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	source := cfg.Source
	if source == "" {
		source = "(defaults)"
	}
	module := cfg.ModulePath
	if module == "" {
		module = "(none)"
	}

	p := newPalette()
	fmt.Fprintf(stdout, "App:      %s\n", p.block(cfg.AppName))
	fmt.Fprintf(stdout, "Module:   %s\n", module)
	fmt.Fprintf(stdout, "Source:   %s\n", source)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Engine:")
	fmt.Fprintf(stdout, "  %-8s %d\n", "gcGrace:", cfg.GCGrace)
	fmt.Fprintf(stdout, "  %-8s %v\n", "verbose:", cfg.Verbose)
	fmt.Fprintf(stdout, "  %-8s %gx%g\n", "size:", cfg.Width, cfg.Height)
	return nil
}
