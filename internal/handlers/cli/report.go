package cli

import (
	"fmt"
	"io"

	"github.com/gabapcia/blockscan/internal/blockscan"
	"github.com/gabapcia/blockscan/internal/opreturn"
	"github.com/gabapcia/blockscan/internal/pkg/types"
)

const separator = "--------------------------------------------------"

// textReport writes scan progress and the final summary as plain text.
type textReport struct {
	w io.Writer
}

// Compile-time check to ensure *textReport implements the blockscan.Reporter interface.
var _ blockscan.Reporter = (*textReport)(nil)

func newTextReport(w io.Writer) *textReport {
	return &textReport{w: w}
}

func (r *textReport) TargetResolved(height types.Height) {
	fmt.Fprintf(r.w, "Fetching transactions for block number: %s\n", height)
}

func (r *textReport) BlockResolved(blockHash string) {
	fmt.Fprintf(r.w, "Block hash: %s\n", blockHash)
}

func (r *textReport) TransactionHeader(number int, txid string) {
	fmt.Fprintln(r.w, separator)
	fmt.Fprintf(r.w, "Transaction: #%d <--> %s\n", number, txid)
}

func (r *textReport) Payload(p opreturn.Payload) {
	fmt.Fprintf(r.w, "  OP_RETURN hex:   %s\n", p.Hex)
	fmt.Fprintf(r.w, "  OP_RETURN ascii: %s\n", p.Text)
}

// Summary writes the final statistics block.
func (r *textReport) Summary(s blockscan.Summary) {
	var (
		stats    = s.Statistics
		smallest = stats.SmallestSize()
		largest  = stats.Largest
	)

	fmt.Fprintln(r.w, separator)
	fmt.Fprintf(r.w, "Statistics for block number:      %s\n", s.Height)
	fmt.Fprintf(r.w, "  Total transactions processed:   %d\n", stats.TotalTransactions)
	fmt.Fprintf(r.w, "  Total OP_RETURN occurrences:    %d\n", stats.TotalOccurrences)
	fmt.Fprintf(r.w, "  Smallest OP_RETURN hex length:  %d (%d)\n", smallest.Hex, smallest.Bytes())
	fmt.Fprintf(r.w, "  Largest OP_RETURN hex length:   %d (%d)\n", largest.Hex, largest.Bytes())
	fmt.Fprintf(r.w, "  Smallest OP_RETURN data length: %d characters\n", smallest.Text)
	fmt.Fprintf(r.w, "  Largest OP_RETURN data length:  %d characters\n", largest.Text)
	fmt.Fprintf(r.w, "    (Transaction ID:         %s)\n", stats.Exemplar.TxID)
	fmt.Fprintf(r.w, "    (OP_RETURN Data - ASCII: %s)\n", stats.Exemplar.Payload.Text)
	fmt.Fprintf(r.w, "    (OP_RETURN Data - HEX:   %s)\n", stats.Exemplar.Payload.Hex)
}
