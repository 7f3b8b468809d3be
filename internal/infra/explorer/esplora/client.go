// Package esplora implements the blockfetch.Explorer interface for
// Esplora-compatible block explorers such as mempool.space, using their
// plain REST API.
package esplora

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/blockscan/internal/blockfetch"
	"github.com/gabapcia/blockscan/internal/pkg/transport/rest"
	"github.com/gabapcia/blockscan/internal/pkg/types"
)

const (
	// tipHeightPath returns the current chain tip height as plain text.
	tipHeightPath = "/api/blocks/tip/height"

	// blockHashPathFormat returns the hash of the block at a height as plain text.
	blockHashPathFormat = "/api/block-height/%d"
)

// ErrMalformedResponse is returned when a plain-text endpoint answers with
// something that is not what it documents.
var ErrMalformedResponse = errors.New("malformed response")

// client implements the blockfetch.Explorer interface for Esplora REST APIs.
type client struct {
	conn rest.Client // Underlying REST client used to reach the explorer
}

// Ensure client implements the blockfetch.Explorer interface at compile time.
var _ blockfetch.Explorer = (*client)(nil)

// TipHeight implements the blockfetch.Explorer interface.
func (c *client) TipHeight(ctx context.Context) (types.Height, error) {
	res, err := c.conn.Get(ctx, tipHeightPath)
	if err != nil {
		return 0, err
	}

	if err := res.Err(); err != nil {
		return 0, err
	}

	body := strings.TrimSpace(string(res.Body))
	height, err := types.HeightFromString(body)
	if err != nil {
		return 0, fmt.Errorf("%w: tip height %q is not a number", ErrMalformedResponse, body)
	}

	return height, nil
}

// BlockHash implements the blockfetch.Explorer interface.
// The response body is returned verbatim.
func (c *client) BlockHash(ctx context.Context, height types.Height) (string, error) {
	res, err := c.conn.Get(ctx, fmt.Sprintf(blockHashPathFormat, height.Uint64()))
	if err != nil {
		return "", err
	}

	if err := res.Err(); err != nil {
		return "", err
	}

	return string(res.Body), nil
}

// NewClient creates a new Esplora explorer client using the provided REST connection.
func NewClient(conn rest.Client) *client {
	return &client{
		conn: conn,
	}
}
