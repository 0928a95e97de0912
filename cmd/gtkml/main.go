// Command gtkml builds and runs markup-described applications.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/gtkml/cmd/gtkml/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
