package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabapcia/blockscan/internal/blockscan"
	"github.com/gabapcia/blockscan/internal/pkg/types"

	"github.com/urfave/cli/v3"
)

// ErrTooManyArguments is returned when more than one positional argument is given.
var ErrTooManyArguments = errors.New("too many arguments")

// scanAction returns the action that scans the block named by the optional
// positional height argument and writes the report to w.
//
// Usage example:
//
//	blockscan 840000
func scanAction(bs blockscan.Service, w io.Writer) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if c.NArg() > 1 {
			return fmt.Errorf("%w: expected at most one block height, got %d", ErrTooManyArguments, c.NArg())
		}

		height := c.Args().First()
		if c.NArg() == 1 && height == "" {
			return fmt.Errorf("%w: empty argument", types.ErrInvalidHeight)
		}

		report := newTextReport(w)
		summary, err := bs.Scan(ctx, height, report)
		if err != nil {
			return err
		}

		report.Summary(summary)
		return nil
	}
}
