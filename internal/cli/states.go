package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cropframe/pkg/cache"
	"github.com/matzehuels/cropframe/pkg/diagram"
	cferrors "github.com/matzehuels/cropframe/pkg/errors"
	"github.com/matzehuels/cropframe/pkg/selection"
)

type statesOpts struct {
	format    string
	output    string
	highlight []string
	direction string
	noCache   bool
}

// statesCommand renders the interaction state machine.
func (c *CLI) statesCommand() *cobra.Command {
	var opts statesOpts

	cmd := &cobra.Command{
		Use:   "states",
		Short: "Render the selection state machine",
		Long: `Render the selection state machine as Graphviz DOT, SVG or PNG.

DOT output needs no Graphviz install. SVG and PNG are rendered in process.`,
		Example: `  cropframe states
  cropframe states -f svg -o states.svg --highlight selected`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStates(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringSliceVar(&opts.highlight, "highlight", nil, "states to highlight")
	cmd.Flags().StringVar(&opts.direction, "direction", "LR", "graph direction: LR or TB")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "render even when a cached copy exists")

	return cmd
}

func (c *CLI) runStates(cmd *cobra.Command, opts statesOpts) error {
	dopts := diagram.Options{Direction: opts.direction}
	for _, name := range opts.highlight {
		s, err := selection.ParseState(name)
		if err != nil {
			return cferrors.Wrap(cferrors.ErrCodeInvalidInput, err, "--highlight")
		}
		dopts.Highlight = append(dopts.Highlight, s)
	}
	dot := diagram.ToDOT(selection.Transitions, dopts)

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg", "png":
		var err error
		data, err = renderCached(cmd, newCache(opts.noCache), opts.format, dot)
		if err != nil {
			return err
		}
	default:
		return cferrors.New(cferrors.ErrCodeInvalidFormat, "unknown format %q (want dot, svg or png)", opts.format)
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := cferrors.ValidatePath(opts.output); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printInfo(cmd.ErrOrStderr(), "Wrote state diagram")
	printFile(cmd.ErrOrStderr(), opts.output)
	return nil
}

// renderCached renders dot to format, reusing a cached copy for identical input.
func renderCached(cmd *cobra.Command, c cache.Cache, format, dot string) ([]byte, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	defer c.Close()

	key := cache.Key("diagram."+format, []byte(dot))
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		logger.Debug("using cached diagram", "format", format)
		return data, nil
	}

	prog := newProgress(logger)
	spin := newSpinner(ctx, cmd.ErrOrStderr(), "Rendering diagram...")
	spin.Start()
	var (
		data []byte
		err  error
	)
	if format == "svg" {
		data, err = diagram.RenderSVG(ctx, dot)
	} else {
		data, err = diagram.RenderPNG(ctx, dot)
	}
	spin.Stop()
	if err != nil {
		return nil, cferrors.Wrap(cferrors.ErrCodeInternal, err, "render %s", format)
	}
	prog.done("Rendered " + format)

	if err := c.Set(ctx, key, data, 0); err != nil {
		logger.Warn("could not cache diagram", "err", err)
	}
	return data, nil
}
