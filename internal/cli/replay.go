package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/cropframe/pkg/io"
	"github.com/matzehuels/cropframe/pkg/script"
)

type replayOpts struct {
	format string
	output string
	quiet  bool
}

// replayCommand runs an event script without a terminal.
func (c *CLI) replayCommand() *cobra.Command {
	var opts replayOpts

	cmd := &cobra.Command{
		Use:   "replay SCRIPT.toml",
		Short: "Replay a recorded event script headlessly",
		Long: `Replay pointer and key events from a TOML script against a fresh
selection and report the final state.

Accepted regions are written to stdout in the chosen format. With -o the
last accepted region is written to a file instead.`,
		Example: `  cropframe replay testdata/draw.toml
  cropframe replay draw.toml --format json -o region.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json, geometry, text (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the last accepted region to a file")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "only print accepted regions")

	return cmd
}

func (c *CLI) runReplay(cmd *cobra.Command, path string, opts replayOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	format, err := c.outputFormat(opts.format)
	if err != nil {
		return err
	}
	s, err := script.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded script", "name", s.Name, "events", len(s.Events))

	res, err := script.Run(ctx, s)
	if err != nil {
		return err
	}

	if !opts.quiet {
		printReplaySummary(stderr, s, res)
	}
	if len(res.Accepted) == 0 {
		if !opts.quiet {
			printWarning(stderr, "no region accepted")
		}
		return nil
	}

	if opts.output != "" {
		last := res.Accepted[len(res.Accepted)-1]
		return c.writeRegion(stdout, stderr, regionOf(last, res), format, opts.output)
	}
	for _, a := range res.Accepted {
		if err := pkgio.Write(stdout, regionOf(a, res), format); err != nil {
			return err
		}
	}
	return nil
}

func regionOf(a script.Acceptance, res script.Result) pkgio.Region {
	return pkgio.Region{Rect: a.Rect, Bounds: res.Bounds, Episode: a.Episode.String()}
}

func printReplaySummary(w io.Writer, s *script.Script, res script.Result) {
	name := s.Name
	if name == "" {
		name = "(unnamed)"
	}
	printKeyValue(w, "script", name)
	printKeyValue(w, "events", fmt.Sprint(len(s.Events)))
	printKeyValue(w, "state", res.State.String())
	if !res.Selection.IsNoSelection() {
		printKeyValue(w, "selection", res.Selection.Geometry())
		printKeyValue(w, "toolbar", res.Toolbar.Placement.String())
	}
	printKeyValue(w, "accepted", fmt.Sprint(len(res.Accepted)))
	printKeyValue(w, "canceled", fmt.Sprint(res.Canceled))
}
