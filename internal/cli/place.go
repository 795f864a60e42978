package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	cferrors "github.com/matzehuels/cropframe/pkg/errors"
	"github.com/matzehuels/cropframe/pkg/geom"
	pkgio "github.com/matzehuels/cropframe/pkg/io"
	"github.com/matzehuels/cropframe/pkg/selection"
)

type placeOpts struct {
	bounds string
	rect   string
	from   string
}

// placeCommand prints where the toolbar goes for a given selection.
func (c *CLI) placeCommand() *cobra.Command {
	var opts placeOpts

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Show the toolbar placement for a selection",
		Long: `Show where the toolbar is placed for a selection on a surface.

The toolbar goes inside the selection when it is large enough, otherwise
below, above, left of or right of it, and is hidden when none fit.`,
		Example: `  cropframe place --bounds 800x600 --rect 10,10,50,50
  cropframe place --from region.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, bounds, err := opts.resolve()
			if err != nil {
				return err
			}
			renderPlacement(cmd.OutOrStdout(), r, bounds, selection.PlaceToolbar(r, bounds))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.bounds, "bounds", "", "surface size as WxH")
	cmd.Flags().StringVar(&opts.rect, "rect", "", "selection as X,Y,W,H")
	cmd.Flags().StringVar(&opts.from, "from", "", "read the selection and bounds from a region JSON file")
	cmd.MarkFlagsMutuallyExclusive("rect", "from")

	return cmd
}

// resolve parses the selection and bounds from flags. Bounds given with
// --bounds override the ones stored in a --from file.
func (o placeOpts) resolve() (geom.Rect, geom.Size, error) {
	var (
		r      geom.Rect
		bounds geom.Size
	)
	switch {
	case o.from != "":
		region, err := pkgio.ImportJSON(o.from)
		if err != nil {
			return r, bounds, err
		}
		r, bounds = region.Rect, region.Bounds
	case o.rect != "":
		parsed, err := geom.ParseRect(o.rect)
		if err != nil {
			return r, bounds, cferrors.Wrap(cferrors.ErrCodeInvalidInput, err, "--rect")
		}
		r = parsed
	default:
		return r, bounds, cferrors.New(cferrors.ErrCodeInvalidInput, "one of --rect or --from is required")
	}

	if o.bounds != "" {
		parsed, err := geom.ParseSize(o.bounds)
		if err != nil {
			return r, bounds, cferrors.Wrap(cferrors.ErrCodeInvalidInput, err, "--bounds")
		}
		if err := cferrors.ValidateBounds(parsed); err != nil {
			return r, bounds, err
		}
		bounds = parsed
	}
	if !bounds.IsZero() {
		if err := cferrors.ValidateRect(r, bounds); err != nil {
			return r, bounds, err
		}
	}
	return r, bounds, nil
}

func renderPlacement(w io.Writer, r geom.Rect, bounds geom.Size, a selection.ToolbarAnchor) {
	rows := [][]string{
		{"selection", r.Geometry()},
		{"bounds", fmtBounds(bounds)},
		{"placement", a.Placement.String()},
	}
	if a.Visible {
		rows = append(rows, []string{"toolbar", a.Rect().Geometry()})
		for _, b := range selection.ToolbarButtons {
			rows = append(rows, []string{"  " + b.String(), a.ButtonRect(b).Geometry()})
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Field", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 0 {
				return StyleDim.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})

	fmt.Fprintln(w, t.Render())
}

func fmtBounds(b geom.Size) string {
	if b.IsZero() {
		return "unset"
	}
	return b.String()
}
