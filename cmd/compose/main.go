// Command compose drives the demo view tree from the terminal: it replays
// key presses and menu commands and prints what each pass reports.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/compose/cmd/compose/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
