package main

import (
	"bytes"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/dashml/pkg/query"
	"github.com/vango-dev/dashml/pkg/render"
	"golang.org/x/net/html"
)

type renderOptions struct {
	selector string
	pretty   bool
	indent   string
	output   string
}

func renderCmd(flags *globalFlags) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Parse trusted HTML and render it again",
		Long: `Parse trusted HTML from a file (or stdin) and render it with the dashml
serializer. The input is not sanitized; only use it on HTML you trust.

Examples:
  dashml render page.html
  dashml render page.html --select "article h1"
  cat page.html | dashml render --pretty`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("pretty") {
				opts.pretty = cfg.Render.Pretty
			}
			if !cmd.Flags().Changed("indent") {
				opts.indent = cfg.Render.Indent
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			rendered, err := runRender(in, opts)
			if err != nil {
				return err
			}
			if opts.output == "" {
				_, err = cmd.OutOrStdout().Write(rendered)
				return err
			}
			return writeFile(opts.output, rendered)
		},
	}

	cmd.Flags().StringVarP(&opts.selector, "select", "s", "", "Render only the nodes matching a CSS selector")
	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Pretty-print the output (default from dashml.json)")
	cmd.Flags().StringVar(&opts.indent, "indent", "", "Indentation for --pretty (default from dashml.json)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

// runRender parses in and returns the re-serialized markup, one line per
// selected node.
func runRender(in io.Reader, opts renderOptions) ([]byte, error) {
	src, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}

	root, err := render.UnsafeFromString(string(src))
	if err != nil {
		return nil, err
	}

	nodes := []*html.Node{root}
	if opts.selector != "" {
		if nodes, err = query.Select(root, opts.selector); err != nil {
			return nil, err
		}
	}

	r := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty, Indent: opts.indent})
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := r.RenderToWriter(&buf, n); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
