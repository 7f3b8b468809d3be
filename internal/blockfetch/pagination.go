package blockfetch

import (
	"errors"
	"fmt"
)

// ErrEndOfPagination marks the end of a block's transaction list.
//
// It is never returned by FetchAllTransactions: every page that signals it
// ends the fetch loop and the transactions gathered so far are kept.
var ErrEndOfPagination = errors.New("end of pagination")

// EndReason describes why a block's pagination stopped.
type EndReason string

const (
	// EndEmptyBody means the page body was empty or whitespace-only.
	EndEmptyBody EndReason = "empty body"

	// EndNotFound means the explorer answered with its "not found" message.
	EndNotFound EndReason = "block not found"

	// EndMalformed means the page body could not be parsed as a list of transactions.
	// Upstream errors that are not transport failures end up here too.
	EndMalformed EndReason = "malformed page"

	// EndNoTransactions means the page parsed as an empty list.
	EndNoTransactions EndReason = "no transactions"

	// EndTransport means the page request itself failed.
	EndTransport EndReason = "transport failure"
)

// PaginationEnd is the error an Explorer returns when a page signals the end
// of the transaction list. It matches ErrEndOfPagination with errors.Is.
type PaginationEnd struct {
	Reason EndReason // Why pagination stopped
	Err    error     // Underlying cause, if any (e.g. a JSON syntax error)
}

// NewPaginationEnd builds a PaginationEnd for the given reason and optional cause.
func NewPaginationEnd(reason EndReason, cause error) *PaginationEnd {
	return &PaginationEnd{Reason: reason, Err: cause}
}

// Error implements the error interface.
func (e *PaginationEnd) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrEndOfPagination, e.Reason)
	}

	return fmt.Sprintf("%s: %s: %s", ErrEndOfPagination, e.Reason, e.Err)
}

// Is reports whether target is ErrEndOfPagination.
func (e *PaginationEnd) Is(target error) bool {
	return target == ErrEndOfPagination
}

// Unwrap returns the underlying cause.
func (e *PaginationEnd) Unwrap() error {
	return e.Err
}

// endReason classifies an error that stopped pagination.
func endReason(err error) EndReason {
	var end *PaginationEnd
	if errors.As(err, &end) {
		return end.Reason
	}

	return EndTransport
}
