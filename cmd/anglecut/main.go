// AngleCut plans cut layouts for wall-support angle runs.
//
// A command-line planner that cuts long support-angle runs into
// manufacturable pieces and positions the mounting brackets on each piece.
//
// Build:
//   go build -o anglecut ./cmd/anglecut
//
// With version information:
//   go build -ldflags "-X main.version=v1.0.0 -X main.commit=$(git rev-parse --short HEAD)" ./cmd/anglecut

package main

import (
	"fmt"
	"os"

	"github.com/piwi3910/AngleCut/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
