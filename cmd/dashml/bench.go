package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vango-dev/dashml/pkg/render"
	"golang.org/x/net/html"
)

const benchRuleWidth = 80

// benchCase builds a fresh tree per iteration, so building is measured
// along with rendering.
type benchCase struct {
	name  string
	build func() *html.Node
}

var benchCases = []benchCase{
	{name: "Hello world", build: helloWorld},
	{name: "Simple HTML document.", build: simpleDocument},
}

func benchCmd(flags *globalFlags) *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark building and rendering",
		Long: `Build and render two reference trees repeatedly and report the total
and per-render time.

Examples:
  dashml bench
  dashml bench --iterations=1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("iterations") {
				iterations = cfg.Bench.Iterations
			}
			if iterations <= 0 {
				return fmt.Errorf("--iterations must be positive, got %d", iterations)
			}

			out := cmd.OutOrStdout()
			for _, bc := range benchCases {
				if err := runBenchmark(out, bc, iterations); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 0, "Renders per benchmark (default from dashml.json)")

	return cmd
}

func runBenchmark(out io.Writer, bc benchCase, iterations int) error {
	rule := strings.Repeat("=", benchRuleWidth)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Benchmark: '%s'\n", bc.name)
	fmt.Fprintln(out, rule)

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if _, err := render.Render(bc.build()); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	total := float64(elapsed) / float64(time.Millisecond)
	fmt.Fprintf(out, "%.4f milliseconds for %d renders of '%s'\n", total, iterations, bc.name)
	fmt.Fprintf(out, "Avg %.4f milliseconds for one render.\n", total/float64(iterations))
	fmt.Fprintln(out)
	return nil
}
