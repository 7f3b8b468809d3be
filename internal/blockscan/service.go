// Package blockscan runs the scan pipeline for one block: it resolves the
// target block, fetches all of its transactions and aggregates their
// OP_RETURN outputs into a Summary.
package blockscan

import (
	"context"

	"github.com/gabapcia/blockscan/internal/blockfetch"
	"github.com/gabapcia/blockscan/internal/opreturn"
	"github.com/gabapcia/blockscan/internal/pkg/logger"
	"github.com/gabapcia/blockscan/internal/pkg/types"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Summary is the outcome of scanning one block.
type Summary struct {
	RunID      string              // Identifier of the scan, also found in logs and traces
	Height     types.Height        // Height of the scanned block
	BlockHash  string              // Identifier of the scanned block
	Statistics opreturn.Statistics // OP_RETURN statistics over every fetched transaction
}

// Reporter receives progress while a block is scanned.
type Reporter interface {
	opreturn.Reporter

	// TargetResolved is called once the block height to scan is known.
	TargetResolved(height types.Height)

	// BlockResolved is called once the block identifier is known.
	BlockResolved(blockHash string)
}

// Service defines the scan pipeline.
type Service interface {
	// Scan scans the block at explicitHeight, or the chain tip when it is empty.
	//
	// It fails with types.ErrInvalidHeight for a malformed height and with
	// blockfetch.ErrUpstream when the block cannot be resolved. Problems while
	// paginating never fail the scan.
	Scan(ctx context.Context, explicitHeight string, r Reporter) (Summary, error)
}

// service is the default implementation of the Service interface.
type service struct {
	fetcher blockfetch.Service // Source of the block's transactions
	tracer  trace.Tracer
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// fail records err on span and returns it.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// Scan implements the Service interface.
func (s *service) Scan(ctx context.Context, explicitHeight string, r Reporter) (Summary, error) {
	runID := uuid.NewString()

	ctx, span := s.tracer.Start(ctx, "blockscan.Scan", trace.WithAttributes(attribute.String("run.id", runID)))
	defer span.End()

	height, err := s.fetcher.ResolveTargetHeight(ctx, explicitHeight)
	if err != nil {
		return Summary{}, fail(span, err)
	}
	r.TargetResolved(height)

	blockHash, err := s.fetcher.ResolveBlockHash(ctx, height)
	if err != nil {
		return Summary{}, fail(span, err)
	}
	r.BlockResolved(blockHash)

	span.SetAttributes(
		attribute.Int64("block.height", int64(height)),
		attribute.String("block.hash", blockHash),
	)
	logger.Info(ctx, "fetching block transactions", "run_id", runID, "height", height.Uint64(), "block_hash", blockHash)

	txs, err := s.fetcher.FetchAllTransactions(ctx, blockHash)
	if err != nil {
		return Summary{}, fail(span, err)
	}

	stats := opreturn.Aggregate(toOpreturnTransactions(txs), r)
	logger.Info(ctx, "block scanned",
		"run_id", runID,
		"height", height.Uint64(),
		"transactions", stats.TotalTransactions,
		"op_returns", stats.TotalOccurrences,
	)

	return Summary{
		RunID:      runID,
		Height:     height,
		BlockHash:  blockHash,
		Statistics: stats,
	}, nil
}

// New creates the scan pipeline on top of the given fetcher.
func New(fetcher blockfetch.Service) *service {
	return &service{
		fetcher: fetcher,
		tracer:  otel.Tracer("github.com/gabapcia/blockscan/internal/blockscan"),
	}
}
