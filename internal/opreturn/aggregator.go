package opreturn

// Output is a transaction output as seen by the aggregator.
type Output struct {
	ScriptPubKeyASM string
}

// Transaction is a transaction as seen by the aggregator.
type Transaction struct {
	TxID    string
	Outputs []Output
}

// Reporter receives the OP_RETURN outputs found while aggregating.
type Reporter interface {
	// TransactionHeader is called once per transaction, before its first
	// OP_RETURN payload. number is the 1-based position of the transaction.
	TransactionHeader(number int, txid string)

	// Payload is called for every OP_RETURN output, in output order.
	Payload(p Payload)
}

// NopReporter discards every report.
type NopReporter struct{}

// TransactionHeader implements the Reporter interface.
func (NopReporter) TransactionHeader(int, string) {}

// Payload implements the Reporter interface.
func (NopReporter) Payload(Payload) {}

// Aggregator folds transactions into Statistics, one at a time and in order.
// It is not safe for concurrent use.
type Aggregator struct {
	reporter Reporter
	stats    Statistics
}

// NewAggregator returns an empty Aggregator reporting to r. A nil r discards reports.
func NewAggregator(r Reporter) *Aggregator {
	if r == nil {
		r = NopReporter{}
	}

	return &Aggregator{reporter: r}
}

// Observe folds tx into the statistics.
func (a *Aggregator) Observe(tx Transaction) {
	a.stats.TotalTransactions++
	number := a.stats.TotalTransactions

	headerReported := false
	for _, output := range tx.Outputs {
		if !IsMarker(output.ScriptPubKeyASM) {
			continue
		}

		payload := ExtractPayload(output.ScriptPubKeyASM)
		if !headerReported {
			a.reporter.TransactionHeader(number, tx.TxID)
			headerReported = true
		}
		a.reporter.Payload(payload)

		a.stats.observe(tx.TxID, payload)
	}
}

// Statistics returns a snapshot of the statistics gathered so far.
func (a *Aggregator) Statistics() Statistics {
	stats := a.stats
	if stats.Smallest != nil {
		smallest := *stats.Smallest
		stats.Smallest = &smallest
	}

	return stats
}

// Aggregate folds every transaction of txs, in order, and returns the final statistics.
func Aggregate(txs []Transaction, r Reporter) Statistics {
	a := NewAggregator(r)
	for _, tx := range txs {
		a.Observe(tx)
	}

	return a.Statistics()
}
