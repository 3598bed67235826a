// Command pids searches for small positive influence dominating sets.
//
//	pids greedy -i graph.txt -n_apps 5
//	pids local  -i graph.txt --strategy anneal --seed 7
//	pids tabu   -i graph.txt -t 60 -n_apps 10
//	pids generate --topology grid --rows 20 --cols 30 -o grid.txt
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdout, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run builds the CLI and executes args; results go to out.
func run(ctx context.Context, out io.Writer, args []string) error {
	return newCLI(out).RunContext(ctx, args)
}
