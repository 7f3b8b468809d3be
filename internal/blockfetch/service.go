// Package blockfetch resolves which block to scan and pulls its full
// transaction list from an Explorer, one page at a time.
package blockfetch

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/gabapcia/blockscan/internal/pkg/logger"
	"github.com/gabapcia/blockscan/internal/pkg/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// PageSize is the number of transactions the explorer returns per page.
const PageSize = 25

// instrumentationName identifies this package's tracer and meter.
const instrumentationName = "github.com/gabapcia/blockscan/internal/blockfetch"

// ErrUpstream is returned when the explorer cannot be reached or returns an
// unusable answer while resolving the target block.
var ErrUpstream = errors.New("upstream error")

// Service defines the fetcher operations.
type Service interface {
	// ResolveTargetHeight returns the explicit height when one is given, without
	// any network call, or the current chain tip height otherwise.
	//
	// An empty explicit value means "not given". A value that is not a
	// non-negative integer fails with types.ErrInvalidHeight.
	ResolveTargetHeight(ctx context.Context, explicit string) (types.Height, error)

	// ResolveBlockHash returns the identifier of the block at height.
	ResolveBlockHash(ctx context.Context, height types.Height) (string, error)

	// Pages returns the lazy sequence of the block's transaction pages.
	//
	// The sequence is finite and single-use. Each page is requested only after
	// the previous one was consumed. When pagination stops, the last element
	// carries the error that stopped it: a *PaginationEnd or a transport error.
	Pages(ctx context.Context, blockHash string) iter.Seq2[Page, error]

	// FetchAllTransactions returns every transaction of the block in block order.
	//
	// Pagination failures never surface: whatever was gathered before the
	// failing page is returned. Only context cancellation is reported.
	FetchAllTransactions(ctx context.Context, blockHash string) ([]Transaction, error)
}

// service is the default implementation of the Service interface.
type service struct {
	explorer Explorer // Source of block data

	tracer       trace.Tracer
	pagesCounter metric.Int64Counter // pages received, by end reason
	txsCounter   metric.Int64Counter // transactions received
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// ResolveTargetHeight implements the Service interface.
func (s *service) ResolveTargetHeight(ctx context.Context, explicit string) (types.Height, error) {
	if explicit != "" {
		return types.HeightFromString(explicit)
	}

	ctx, span := s.tracer.Start(ctx, "blockfetch.ResolveTargetHeight")
	defer span.End()

	height, err := s.explorer.TipHeight(ctx)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("%w: fetching tip height: %w", ErrUpstream, err)
	}

	span.SetAttributes(attribute.Int64("block.height", int64(height)))
	return height, nil
}

// ResolveBlockHash implements the Service interface.
func (s *service) ResolveBlockHash(ctx context.Context, height types.Height) (string, error) {
	ctx, span := s.tracer.Start(ctx, "blockfetch.ResolveBlockHash",
		trace.WithAttributes(attribute.Int64("block.height", int64(height))),
	)
	defer span.End()

	hash, err := s.explorer.BlockHash(ctx, height)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("%w: fetching hash of block %s: %w", ErrUpstream, height, err)
	}

	return hash, nil
}

// fetchPage requests the page at offset inside its own span.
func (s *service) fetchPage(ctx context.Context, blockHash string, offset int) ([]Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "blockfetch.page",
		trace.WithAttributes(
			attribute.String("block.hash", blockHash),
			attribute.Int("page.offset", offset),
		),
	)
	defer span.End()

	txs, err := s.explorer.Transactions(ctx, blockHash, offset)
	if err != nil {
		span.SetAttributes(attribute.String("page.end_reason", string(endReason(err))))
		return nil, err
	}

	span.SetAttributes(attribute.Int("page.transactions", len(txs)))
	return txs, nil
}

// Pages implements the Service interface.
func (s *service) Pages(ctx context.Context, blockHash string) iter.Seq2[Page, error] {
	return func(yield func(Page, error) bool) {
		for offset := 0; ; offset += PageSize {
			txs, err := s.fetchPage(ctx, blockHash, offset)
			if err != nil {
				s.pagesCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("end_reason", string(endReason(err)))))
				yield(Page{Offset: offset}, err)
				return
			}

			s.pagesCounter.Add(ctx, 1)
			s.txsCounter.Add(ctx, int64(len(txs)))

			if !yield(Page{Offset: offset, Transactions: txs}, nil) {
				return
			}
		}
	}
}

// logPaginationEnd records why pagination stopped. Parse failures and
// transport errors are warnings since they may hide a truncated block.
func logPaginationEnd(ctx context.Context, blockHash string, offset int, err error) {
	reason := endReason(err)
	switch reason {
	case EndMalformed, EndTransport:
		logger.Warn(ctx, "pagination stopped early",
			"block_hash", blockHash,
			"offset", offset,
			"reason", reason,
			"error", err,
		)
	default:
		logger.Debug(ctx, "pagination finished",
			"block_hash", blockHash,
			"offset", offset,
			"reason", reason,
		)
	}
}

// FetchAllTransactions implements the Service interface.
func (s *service) FetchAllTransactions(ctx context.Context, blockHash string) ([]Transaction, error) {
	var transactions []Transaction
	for page, err := range s.Pages(ctx, blockHash) {
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return transactions, ctxErr
			}

			logPaginationEnd(ctx, blockHash, page.Offset, err)
			break
		}

		transactions = append(transactions, page.Transactions...)
	}

	return transactions, nil
}

// newCounter creates a counter on meter, falling back to a no-op one.
func newCounter(meter metric.Meter, name, description string) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return noop.Int64Counter{}
	}

	return counter
}

// New creates a fetcher backed by the given explorer. Tracing and metrics use
// the global OpenTelemetry providers.
func New(explorer Explorer) *service {
	meter := otel.Meter(instrumentationName)

	return &service{
		explorer:     explorer,
		tracer:       otel.Tracer(instrumentationName),
		pagesCounter: newCounter(meter, "blockscan.pages", "Number of transaction pages requested"),
		txsCounter:   newCounter(meter, "blockscan.transactions", "Number of transactions received"),
	}
}
