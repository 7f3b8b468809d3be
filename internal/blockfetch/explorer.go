package blockfetch

import (
	"context"

	"github.com/gabapcia/blockscan/internal/pkg/types"
)

// Explorer defines a source of block data, such as an Esplora-compatible REST API.
type Explorer interface {
	// TipHeight returns the height of the current chain tip.
	TipHeight(ctx context.Context) (types.Height, error)

	// BlockHash returns the identifier of the block at the given height,
	// exactly as the explorer reports it.
	BlockHash(ctx context.Context, height types.Height) (string, error)

	// Transactions returns the page of the block's transactions starting at offset.
	//
	// When the page signals the end of the list it returns a *PaginationEnd.
	// Any other error is a transport failure.
	Transactions(ctx context.Context, blockHash string, offset int) ([]Transaction, error)
}
