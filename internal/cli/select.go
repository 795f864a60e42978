package cli

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	cferrors "github.com/matzehuels/cropframe/pkg/errors"
	pkgio "github.com/matzehuels/cropframe/pkg/io"
)

type selectOpts struct {
	format string
	output string
}

// selectCommand runs the interactive terminal host.
func (c *CLI) selectCommand() *cobra.Command {
	var opts selectOpts

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select a region interactively",
		Long: `Select a region with the mouse in a full-screen terminal view.

Drag on empty space to draw a selection. Drag its body to move it and its
handles to resize it. Accept with the toolbar or Enter, cancel with Esc,
start over with a right click.

The accepted region is written to stdout, or to the file given with -o.`,
		Example: `  cropframe select
  cropframe select --format json -o region.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSelect(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json, geometry, text (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the region to a file instead of stdout")

	return cmd
}

func (c *CLI) runSelect(ctx context.Context, stdout, stderr io.Writer, opts selectOpts) error {
	format, err := c.outputFormat(opts.format)
	if err != nil {
		return err
	}

	restore, err := c.redirectLog()
	if err != nil {
		return err
	}
	model := NewSelectModel(c.config)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx), tea.WithOutput(stderr))
	_, err = p.Run()
	restore()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return cferrors.Wrap(cferrors.ErrCodeInternal, err, "terminal ui")
	}
	if model.Accepted == nil {
		return cferrors.New(cferrors.ErrCodeCanceled, "selection canceled")
	}

	return c.writeRegion(stdout, stderr, *model.Accepted, format, opts.output)
}

// outputFormat resolves a --format flag, falling back to the configured default.
func (c *CLI) outputFormat(flag string) (pkgio.Format, error) {
	if flag == "" {
		flag = c.config.Format
	}
	return pkgio.ParseFormat(flag)
}

// writeRegion writes r to path, or to stdout when path is empty.
func (c *CLI) writeRegion(stdout, stderr io.Writer, r pkgio.Region, format pkgio.Format, path string) error {
	if path == "" {
		return pkgio.Write(stdout, r, format)
	}
	if err := pkgio.Export(r, format, path); err != nil {
		return err
	}
	printSuccess(stderr, "Region %s saved", r.Rect.Geometry())
	printFile(stderr, path)
	return nil
}

// redirectLog sends log output to the configured log file, or discards it,
// while the alternate screen owns the terminal.
func (c *CLI) redirectLog() (restore func(), err error) {
	var (
		w        io.Writer = io.Discard
		closeLog           = func() {}
	)
	if c.config.LogFile != "" {
		f, err := os.OpenFile(c.config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, cferrors.Wrap(cferrors.ErrCodeInvalidConfig, err, "open log file %s", c.config.LogFile)
		}
		w = f
		closeLog = func() { f.Close() }
	}
	c.Logger.SetOutput(w)
	return func() {
		c.Logger.SetOutput(c.logOut)
		closeLog()
	}, nil
}
