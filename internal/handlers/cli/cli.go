package cli

import (
	"context"
	"io"

	"github.com/gabapcia/blockscan/internal/blockscan"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the blockscan CLI application.
//
// The application has a single action that scans one block:
//
//	blockscan [height]
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - bs: The blockscan service implementation used to scan the block.
//   - stdout: Destination of the human-readable report.
//   - args: Command-line arguments, including the program name.
func Run(ctx context.Context, bs blockscan.Service, stdout io.Writer, args []string) error {
	app := &cli.Command{
		Name:        "blockscan",
		Usage:       "Print OP_RETURN statistics for a block",
		ArgsUsage:   "[height]",
		Description: "Fetches every transaction of the block at the given height, or of the latest block when no height is given, and reports the data carried by its OP_RETURN outputs.",
		Writer:      stdout,
		Action:      scanAction(bs, stdout),
	}

	return app.Run(ctx, args)
}
